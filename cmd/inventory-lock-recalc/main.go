// inventory-lock-recalc recomputes the lock columns (locked_qty, locked_weight)
// of every stored pallet from the release order lines that still hold a lock.
// Use it after manual data fixes or when a crash left locks drifted.
//
// Usage:
//   DB_USER=... DB_PASSWORD=... go run ./cmd/inventory-lock-recalc --domain-id <uuid> [--dry-run]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/models"
	"github.com/mmdatafocus/warehouse_backend/utils"
)

func main() {
	domainID := flag.String("domain-id", "", "Required: domain id (uuid)")
	dryRun := flag.Bool("dry-run", false, "Report drifted pallets without writing")
	flag.Parse()

	if strings.TrimSpace(*domainID) == "" {
		fmt.Fprintln(os.Stderr, "--domain-id is required")
		os.Exit(1)
	}

	config.ConnectDatabaseWithRetry()
	if config.GetDB() == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}

	ctx := context.Background()
	ctx = utils.SetDomainIdInContext(ctx, *domainID)
	ctx = utils.SetUserNameInContext(ctx, "LockRecalc")

	report, err := models.RecalculateInventoryLocks(ctx, *domainID, *dryRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recalc failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Checked %d pallets, %d drifted, %d fixed (dry-run=%v)\n",
		report.Checked, len(report.Drifted), report.Fixed, report.DryRun)
	for _, d := range report.Drifted {
		fmt.Printf("  pallet=%s inventory_id=%d locked_qty %s -> %s locked_weight %s -> %s\n",
			d.PalletId, d.InventoryId,
			d.StoredQty.String(), d.ExpectedQty.String(),
			d.StoredWeight.String(), d.ExpectedWeight.String())
	}
	if *dryRun && len(report.Drifted) > 0 {
		os.Exit(3)
	}
}
