package models

import (
	"context"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// one pallet whose stored lock columns disagree with its open order lines
type LockDrift struct {
	InventoryId    int             `json:"inventory_id"`
	PalletId       string          `json:"pallet_id"`
	StoredQty      decimal.Decimal `json:"stored_locked_qty"`
	StoredWeight   decimal.Decimal `json:"stored_locked_weight"`
	ExpectedQty    decimal.Decimal `json:"expected_locked_qty"`
	ExpectedWeight decimal.Decimal `json:"expected_locked_weight"`
}

type LockRecalcReport struct {
	DomainId string      `json:"domain_id"`
	Checked  int         `json:"checked"`
	Drifted  []LockDrift `json:"drifted"`
	Fixed    int         `json:"fixed"`
	DryRun   bool        `json:"dry_run"`
}

// RecalculateInventoryLocks recomputes LockedQty and LockedWeight for every
// non-terminated pallet of the domain from the order lines that still hold a
// lock. Picking releases the lock when a line reaches PICKED, so only lines in
// PENDING, READY_TO_PICK or PICKING count. With dryRun the drift is reported
// but nothing is written.
func RecalculateInventoryLocks(ctx context.Context, domainId string, dryRun bool) (*LockRecalcReport, error) {
	db := config.GetDB()
	logger := config.GetLogger()

	report := &LockRecalcReport{DomainId: domainId, DryRun: dryRun}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inventories []Inventory
		if err := tx.Where("domain_id = ? AND status <> ?", domainId, InventoryStatusTerminated).
			Order("id").Find(&inventories).Error; err != nil {
			config.LogError(logger, "InventoryLockRecalc.go", "RecalculateInventoryLocks", "load inventories", domainId, err)
			return err
		}
		report.Checked = len(inventories)

		type lockSum struct {
			InventoryId int
			Qty         decimal.Decimal
			Weight      decimal.Decimal
		}
		var sums []lockSum
		if err := tx.Raw(`
			SELECT inventory_id, SUM(release_qty) AS qty, SUM(release_weight) AS weight
			FROM order_inventories
			WHERE domain_id = ? AND status IN ? AND inventory_id IS NOT NULL
			GROUP BY inventory_id
		`, domainId, []OrderInventoryStatus{
			OrderInventoryStatusPending,
			OrderInventoryStatusReadyToPick,
			OrderInventoryStatusPicking,
		}).Scan(&sums).Error; err != nil {
			config.LogError(logger, "InventoryLockRecalc.go", "RecalculateInventoryLocks", "sum open order lines", domainId, err)
			return err
		}

		expected := make(map[int]lockSum, len(sums))
		for _, s := range sums {
			expected[s.InventoryId] = s
		}

		for _, inventory := range inventories {
			want := expected[inventory.ID]
			if inventory.LockedQty.Equal(want.Qty) && inventory.LockedWeight.Equal(want.Weight) {
				continue
			}
			report.Drifted = append(report.Drifted, LockDrift{
				InventoryId:    inventory.ID,
				PalletId:       inventory.PalletId,
				StoredQty:      inventory.LockedQty,
				StoredWeight:   inventory.LockedWeight,
				ExpectedQty:    want.Qty,
				ExpectedWeight: want.Weight,
			})
			if dryRun {
				continue
			}
			if err := tx.Model(&Inventory{}).Where("id = ?", inventory.ID).Updates(map[string]interface{}{
				"locked_qty":    want.Qty,
				"locked_weight": want.Weight,
			}).Error; err != nil {
				config.LogError(logger, "InventoryLockRecalc.go", "RecalculateInventoryLocks", "fix pallet lock", inventory.PalletId, err)
				return err
			}
			report.Fixed++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
