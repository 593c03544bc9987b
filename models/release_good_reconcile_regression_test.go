package models_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/models"
	"github.com/mmdatafocus/warehouse_backend/utils"
	"github.com/mmdatafocus/warehouse_backend/workflow"
	"github.com/shopspring/decimal"
)

// testFixture is the shared setup for release order tests: a domain, a
// customer, a warehouse with one location, one product and two stored pallets.
type testFixture struct {
	ctx      context.Context
	domainId string
	bizplace *models.Bizplace
	product  *models.Product
	palletA  *models.Inventory
	palletB  *models.Inventory
}

func setupReleaseOrderFixture(t *testing.T) *testFixture {
	t.Helper()

	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	ctx := context.Background()

	redisName, redisPort := startRedisContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(redisName) })

	mysqlName, mysqlPort := startMySQLContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(mysqlName) })

	// Wire env for config.Connect* helpers.
	t.Setenv("REDIS_ADDRESS", fmt.Sprintf("127.0.0.1:%s", redisPort))
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "testpw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", mysqlPort)
	t.Setenv("DB_NAME", "warehouse_test")

	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()
	models.MigrateTable()

	ctx = utils.SetUserIdInContext(ctx, 1)
	ctx = utils.SetUserNameInContext(ctx, "Test")
	ctx = utils.SetUsernameInContext(ctx, "test@local")
	ctx = utils.SetIsAdminInContext(ctx, true)

	domain, err := models.CreateDomain(ctx, &models.NewDomain{
		Name:      fmt.Sprintf("Test Domain %d", time.Now().UnixNano()),
		Subdomain: fmt.Sprintf("test-%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Fatalf("CreateDomain: %v", err)
	}
	domainId := domain.ID.String()
	ctx = utils.SetDomainIdInContext(ctx, domainId)

	bizplace, err := models.CreateBizplace(ctx, &models.NewBizplace{Name: "Acme Trading"})
	if err != nil {
		t.Fatalf("CreateBizplace: %v", err)
	}

	warehouse, err := models.CreateWarehouse(ctx, &models.NewWarehouse{Name: "Main Warehouse"})
	if err != nil {
		t.Fatalf("CreateWarehouse: %v", err)
	}

	location, err := models.CreateLocation(ctx, &models.NewLocation{
		WarehouseId: warehouse.ID,
		Name:        "A-01-01",
		Zone:        "A",
	})
	if err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}

	product, err := models.CreateProduct(ctx, &models.NewProduct{
		BizplaceId: bizplace.ID,
		Name:       "Rice 25kg Bag",
		Sku:        "RICE-25",
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	palletA, err := models.CreateInventory(ctx, &models.NewInventory{
		BizplaceId:  bizplace.ID,
		ProductId:   product.ID,
		WarehouseId: warehouse.ID,
		LocationId:  location.ID,
		PalletId:    "PLT-A",
		Qty:         decimal.NewFromInt(100),
		Weight:      decimal.NewFromInt(2500),
	})
	if err != nil {
		t.Fatalf("CreateInventory(PLT-A): %v", err)
	}

	palletB, err := models.CreateInventory(ctx, &models.NewInventory{
		BizplaceId:  bizplace.ID,
		ProductId:   product.ID,
		WarehouseId: warehouse.ID,
		LocationId:  location.ID,
		PalletId:    "PLT-B",
		Qty:         decimal.NewFromInt(50),
		Weight:      decimal.NewFromInt(1250),
	})
	if err != nil {
		t.Fatalf("CreateInventory(PLT-B): %v", err)
	}

	return &testFixture{
		ctx:      ctx,
		domainId: domainId,
		bizplace: bizplace,
		product:  product,
		palletA:  palletA,
		palletB:  palletB,
	}
}

func mustInventory(t *testing.T, ctx context.Context, id int) *models.Inventory {
	t.Helper()
	inv, err := models.GetInventory(ctx, id)
	if err != nil {
		t.Fatalf("GetInventory(%d): %v", id, err)
	}
	return inv
}

func assertDecimal(t *testing.T, label string, got decimal.Decimal, want int64) {
	t.Helper()
	if got.Cmp(decimal.NewFromInt(want)) != 0 {
		t.Fatalf("%s = %s, want %d", label, got.String(), want)
	}
}

func activeLines(rg *models.ReleaseGood) []*models.OrderInventory {
	var lines []*models.OrderInventory
	for i := range rg.OrderInventories {
		if !rg.OrderInventories[i].IsCancelled() {
			lines = append(lines, &rg.OrderInventories[i])
		}
	}
	return lines
}

func inventoryRef(id int) *int {
	return &id
}

func lineOnPallet(t *testing.T, rg *models.ReleaseGood, inventoryId int) *models.OrderInventory {
	t.Helper()
	for i := range rg.OrderInventories {
		line := &rg.OrderInventories[i]
		if line.InventoryId != nil && *line.InventoryId == inventoryId {
			return line
		}
	}
	t.Fatalf("no order line on inventory %d", inventoryId)
	return nil
}

func lineWithBatch(t *testing.T, rg *models.ReleaseGood, batchId string) *models.OrderInventory {
	t.Helper()
	for i := range rg.OrderInventories {
		if rg.OrderInventories[i].BatchId == batchId {
			return &rg.OrderInventories[i]
		}
	}
	t.Fatalf("no order line with batch %q", batchId)
	return nil
}

func TestAddReleaseGoodProductsMixedEditKeepsLocksConsistent(t *testing.T) {
	fx := setupReleaseOrderFixture(t)
	ctx := fx.ctx

	// Order 30 bags off pallet A.
	rg, err := models.CreateReleaseGood(ctx, &models.NewReleaseGood{
		BizplaceId:  fx.bizplace.ID,
		ReleaseDate: time.Now().UTC(),
		Lines: []models.ReleaseGoodProductInput{
			{
				ProductId:     fx.product.ID,
				InventoryId:   inventoryRef(fx.palletA.ID),
				ReleaseQty:    decimal.NewFromInt(30),
				ReleaseWeight: decimal.NewFromInt(750),
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateReleaseGood: %v", err)
	}
	if len(rg.OrderInventories) != 1 {
		t.Fatalf("expected 1 order line, got %d", len(rg.OrderInventories))
	}

	assertDecimal(t, "pallet A locked_qty after create", mustInventory(t, ctx, fx.palletA.ID).LockedQty, 30)

	// One edit: shrink the existing line to 20, merge 5 more back onto the
	// same pallet, and add a brand-new line on pallet B.
	rg, err = models.AddReleaseGoodProducts(ctx, rg.Name,
		[]models.ReleaseGoodProductInput{
			{
				ProductId:     fx.product.ID,
				InventoryId:   inventoryRef(fx.palletA.ID),
				ReleaseQty:    decimal.NewFromInt(5),
				ReleaseWeight: decimal.NewFromInt(125),
			},
			{
				ProductId:     fx.product.ID,
				InventoryId:   inventoryRef(fx.palletB.ID),
				ReleaseQty:    decimal.NewFromInt(10),
				ReleaseWeight: decimal.NewFromInt(250),
			},
		},
		[]models.ExistingOrderInventoryInput{
			{
				ProductId:     fx.product.ID,
				InventoryId:   inventoryRef(fx.palletA.ID),
				ReleaseQty:    decimal.NewFromInt(20),
				ReleaseWeight: decimal.NewFromInt(500),
			},
		},
	)
	if err != nil {
		t.Fatalf("AddReleaseGoodProducts: %v", err)
	}

	// The resize overwrites the reservation to 20, then the merge adds 5.
	if got := len(activeLines(rg)); got != 2 {
		t.Fatalf("expected 2 active lines, got %d", got)
	}
	assertDecimal(t, "line A release_qty", lineOnPallet(t, rg, fx.palletA.ID).ReleaseQty, 25)
	assertDecimal(t, "line B release_qty", lineOnPallet(t, rg, fx.palletB.ID).ReleaseQty, 10)
	assertDecimal(t, "pallet A locked_qty after edit", mustInventory(t, ctx, fx.palletA.ID).LockedQty, 25)
	assertDecimal(t, "pallet A locked_weight after edit", mustInventory(t, ctx, fx.palletA.ID).LockedWeight, 625)
	assertDecimal(t, "pallet B locked_qty after edit", mustInventory(t, ctx, fx.palletB.ID).LockedQty, 10)

	// A weight-only correction adjusts the reservation without touching qty.
	rg, err = models.AddReleaseGoodProducts(ctx, rg.Name, nil,
		[]models.ExistingOrderInventoryInput{
			{
				ProductId:     fx.product.ID,
				InventoryId:   inventoryRef(fx.palletA.ID),
				ReleaseQty:    decimal.NewFromInt(25),
				ReleaseWeight: decimal.NewFromInt(700),
			},
		})
	if err != nil {
		t.Fatalf("AddReleaseGoodProducts(weight only): %v", err)
	}
	assertDecimal(t, "line A release_weight after weight edit", lineOnPallet(t, rg, fx.palletA.ID).ReleaseWeight, 700)
	assertDecimal(t, "pallet A locked_qty after weight edit", mustInventory(t, ctx, fx.palletA.ID).LockedQty, 25)
	assertDecimal(t, "pallet A locked_weight after weight edit", mustInventory(t, ctx, fx.palletA.ID).LockedWeight, 700)

	// Cancel the pallet B line by requesting zero. The cancelled line keeps
	// zero quantities.
	rg, err = models.AddReleaseGoodProducts(ctx, rg.Name, nil,
		[]models.ExistingOrderInventoryInput{
			{ProductId: fx.product.ID, InventoryId: inventoryRef(fx.palletB.ID)},
		},
	)
	if err != nil {
		t.Fatalf("AddReleaseGoodProducts(cancel): %v", err)
	}
	if got := len(activeLines(rg)); got != 1 {
		t.Fatalf("expected 1 active line after cancel, got %d", got)
	}
	cancelled := lineOnPallet(t, rg, fx.palletB.ID)
	if cancelled.Status != models.OrderInventoryStatusCancelled {
		t.Fatalf("cancelled line status = %s, want CANCELLED", cancelled.Status)
	}
	assertDecimal(t, "cancelled line release_qty", cancelled.ReleaseQty, 0)
	assertDecimal(t, "cancelled line release_weight", cancelled.ReleaseWeight, 0)
	assertDecimal(t, "pallet B locked_qty after cancel", mustInventory(t, ctx, fx.palletB.ID).LockedQty, 0)

	// Re-adding the same pallet revives the cancelled line instead of
	// creating a duplicate.
	rg, err = models.AddReleaseGoodProducts(ctx, rg.Name,
		[]models.ReleaseGoodProductInput{
			{
				ProductId:     fx.product.ID,
				InventoryId:   inventoryRef(fx.palletB.ID),
				ReleaseQty:    decimal.NewFromInt(8),
				ReleaseWeight: decimal.NewFromInt(200),
			},
		}, nil)
	if err != nil {
		t.Fatalf("AddReleaseGoodProducts(revive): %v", err)
	}
	if got := len(rg.OrderInventories); got != 2 {
		t.Fatalf("expected 2 order lines total after revive, got %d", got)
	}
	revived := lineOnPallet(t, rg, fx.palletB.ID)
	assertDecimal(t, "revived line B release_qty", revived.ReleaseQty, 8)
	if revived.Status != models.OrderInventoryStatusPending {
		t.Fatalf("revived line status = %s, want PENDING", revived.Status)
	}
	assertDecimal(t, "pallet B locked_qty after revive", mustInventory(t, ctx, fx.palletB.ID).LockedQty, 8)

	// Over-reservation is rejected and must not leak a partial lock.
	_, err = models.AddReleaseGoodProducts(ctx, rg.Name,
		[]models.ReleaseGoodProductInput{
			{
				ProductId:   fx.product.ID,
				InventoryId: inventoryRef(fx.palletB.ID),
				ReleaseQty:  decimal.NewFromInt(500),
			},
		}, nil)
	if err == nil {
		t.Fatal("expected over-reservation error")
	}
	assertDecimal(t, "pallet B locked_qty after rejected edit", mustInventory(t, ctx, fx.palletB.ID).LockedQty, 8)
}

func TestAddReleaseGoodProductsWithoutInventoryReservesNothing(t *testing.T) {
	fx := setupReleaseOrderFixture(t)
	ctx := fx.ctx

	rg, err := models.CreateReleaseGood(ctx, &models.NewReleaseGood{
		BizplaceId:  fx.bizplace.ID,
		ReleaseDate: time.Now().UTC(),
		Lines: []models.ReleaseGoodProductInput{
			{
				ProductId:     fx.product.ID,
				InventoryId:   inventoryRef(fx.palletA.ID),
				ReleaseQty:    decimal.NewFromInt(10),
				ReleaseWeight: decimal.NewFromInt(250),
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateReleaseGood: %v", err)
	}

	// A product-level line carries no pallet and moves no lock.
	rg, err = models.AddReleaseGoodProducts(ctx, rg.Name,
		[]models.ReleaseGoodProductInput{
			{
				ProductId:     fx.product.ID,
				BatchId:       "B-0917",
				ReleaseQty:    decimal.NewFromInt(40),
				ReleaseWeight: decimal.NewFromInt(1000),
			},
		}, nil)
	if err != nil {
		t.Fatalf("AddReleaseGoodProducts(product level): %v", err)
	}

	var generic *models.OrderInventory
	for i := range rg.OrderInventories {
		if rg.OrderInventories[i].InventoryId == nil {
			generic = &rg.OrderInventories[i]
		}
	}
	if generic == nil {
		t.Fatal("expected an inventory-less order line")
	}
	assertDecimal(t, "generic line release_qty", generic.ReleaseQty, 40)
	assertDecimal(t, "pallet A locked_qty", mustInventory(t, ctx, fx.palletA.ID).LockedQty, 10)
	assertDecimal(t, "pallet B locked_qty", mustInventory(t, ctx, fx.palletB.ID).LockedQty, 0)

	// The same product-level key merges into the existing line.
	rg, err = models.AddReleaseGoodProducts(ctx, rg.Name,
		[]models.ReleaseGoodProductInput{
			{
				ProductId:     fx.product.ID,
				BatchId:       "B-0917",
				ReleaseQty:    decimal.NewFromInt(5),
				ReleaseWeight: decimal.NewFromInt(125),
			},
		}, nil)
	if err != nil {
		t.Fatalf("AddReleaseGoodProducts(merge product level): %v", err)
	}
	if got := len(activeLines(rg)); got != 2 {
		t.Fatalf("expected 2 active lines after merge, got %d", got)
	}
	assertDecimal(t, "merged generic line release_qty", lineWithBatch(t, rg, "B-0917").ReleaseQty, 45)
	assertDecimal(t, "pallet A locked_qty after merge", mustInventory(t, ctx, fx.palletA.ID).LockedQty, 10)

	// Cancelling the product-level line addresses it by its key, not a pallet.
	rg, err = models.AddReleaseGoodProducts(ctx, rg.Name, nil,
		[]models.ExistingOrderInventoryInput{
			{ProductId: fx.product.ID, BatchId: "B-0917"},
		})
	if err != nil {
		t.Fatalf("AddReleaseGoodProducts(cancel product level): %v", err)
	}
	if got := len(activeLines(rg)); got != 1 {
		t.Fatalf("expected 1 active line after cancel, got %d", got)
	}
	assertDecimal(t, "pallet A locked_qty after cancel", mustInventory(t, ctx, fx.palletA.ID).LockedQty, 10)

	report, err := models.RecalculateInventoryLocks(ctx, fx.domainId, true)
	if err != nil {
		t.Fatalf("RecalculateInventoryLocks: %v", err)
	}
	if len(report.Drifted) != 0 {
		t.Fatalf("expected no lock drift, got %+v", report.Drifted)
	}
}

func TestReleaseOrderPickingAndLoadingLifecycle(t *testing.T) {
	fx := setupReleaseOrderFixture(t)
	ctx := fx.ctx

	rg, err := models.CreateReleaseGood(ctx, &models.NewReleaseGood{
		BizplaceId:  fx.bizplace.ID,
		ReleaseDate: time.Now().UTC(),
		Lines: []models.ReleaseGoodProductInput{
			{
				ProductId:     fx.product.ID,
				InventoryId:   inventoryRef(fx.palletA.ID),
				ReleaseQty:    decimal.NewFromInt(30),
				ReleaseWeight: decimal.NewFromInt(750),
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateReleaseGood: %v", err)
	}

	ws, err := workflow.GeneratePickingWorksheet(ctx, rg.Name)
	if err != nil {
		t.Fatalf("GeneratePickingWorksheet: %v", err)
	}
	if ws.Status != models.WorksheetStatusDeactivated {
		t.Fatalf("new worksheet status = %s, want DEACTIVATED", ws.Status)
	}
	if len(ws.Details) != 1 {
		t.Fatalf("expected 1 picking task, got %d", len(ws.Details))
	}

	rg, err = models.GetReleaseGoodByName(ctx, rg.Name)
	if err != nil {
		t.Fatalf("GetReleaseGoodByName: %v", err)
	}
	if rg.Status != models.OrderStatusReadyToPick {
		t.Fatalf("order status = %s, want READY_TO_PICK", rg.Status)
	}

	// A line added while a picking worksheet exists goes straight to PICKING
	// and gets its own picking task.
	rg, err = models.AddReleaseGoodProducts(ctx, rg.Name,
		[]models.ReleaseGoodProductInput{
			{
				ProductId:     fx.product.ID,
				InventoryId:   inventoryRef(fx.palletB.ID),
				ReleaseQty:    decimal.NewFromInt(10),
				ReleaseWeight: decimal.NewFromInt(250),
			},
		}, nil)
	if err != nil {
		t.Fatalf("AddReleaseGoodProducts: %v", err)
	}
	lineB := lineOnPallet(t, rg, fx.palletB.ID)
	if lineB.Status != models.OrderInventoryStatusPicking {
		t.Fatalf("added line status = %s, want PICKING", lineB.Status)
	}

	ws, err = models.GetWorksheetByName(ctx, ws.Name)
	if err != nil {
		t.Fatalf("GetWorksheetByName: %v", err)
	}
	if ws.Status != models.WorksheetStatusDeactivated {
		t.Fatalf("worksheet status after edit = %s, want DEACTIVATED", ws.Status)
	}
	if len(ws.Details) != 2 {
		t.Fatalf("expected 2 picking tasks after edit, got %d", len(ws.Details))
	}

	ws, err = workflow.ActivatePickingWorksheet(ctx, ws.Name)
	if err != nil {
		t.Fatalf("ActivatePickingWorksheet: %v", err)
	}
	if ws.Status != models.WorksheetStatusActive {
		t.Fatalf("worksheet status = %s, want ACTIVE", ws.Status)
	}

	// Pick both tasks in full.
	var picked []workflow.PickedItemInput
	for _, d := range ws.Details {
		picked = append(picked, workflow.PickedItemInput{
			WorksheetDetailName: d.Name,
			Qty:                 d.TargetQty,
			Weight:              d.TargetWeight,
		})
	}
	ws, err = workflow.CompletePickingWorksheet(ctx, ws.Name, picked)
	if err != nil {
		t.Fatalf("CompletePickingWorksheet: %v", err)
	}
	if ws.Status != models.WorksheetStatusDone {
		t.Fatalf("worksheet status = %s, want DONE", ws.Status)
	}

	// Picking burns the stock and releases the reservation.
	invA := mustInventory(t, ctx, fx.palletA.ID)
	assertDecimal(t, "pallet A qty after picking", invA.Qty, 70)
	assertDecimal(t, "pallet A locked_qty after picking", invA.LockedQty, 0)
	invB := mustInventory(t, ctx, fx.palletB.ID)
	assertDecimal(t, "pallet B qty after picking", invB.Qty, 40)
	assertDecimal(t, "pallet B locked_qty after picking", invB.LockedQty, 0)

	rg, err = models.GetReleaseGoodByName(ctx, rg.Name)
	if err != nil {
		t.Fatalf("GetReleaseGoodByName: %v", err)
	}
	if rg.Status != models.OrderStatusReadyToLoad {
		t.Fatalf("order status = %s, want READY_TO_LOAD", rg.Status)
	}

	// A line cannot shrink below what workers already picked.
	_, err = models.AddReleaseGoodProducts(ctx, rg.Name, nil,
		[]models.ExistingOrderInventoryInput{
			{
				ProductId:   fx.product.ID,
				InventoryId: inventoryRef(fx.palletA.ID),
				ReleaseQty:  decimal.NewFromInt(5),
			},
		})
	if err == nil || !strings.Contains(err.Error(), "already picked") {
		t.Fatalf("expected already-picked error, got %v", err)
	}

	// Completing the pick generated the loading worksheet.
	loadingWs, err := models.GetWorksheetByName(ctx, "WS-L-"+rg.Name)
	if err != nil {
		t.Fatalf("GetWorksheetByName(loading): %v", err)
	}
	if loadingWs.Type != models.WorksheetTypeLoading {
		t.Fatalf("worksheet type = %s, want LOADING", loadingWs.Type)
	}
	if len(loadingWs.Details) != 2 {
		t.Fatalf("expected 2 loading tasks, got %d", len(loadingWs.Details))
	}

	if _, err = workflow.ActivateLoadingWorksheet(ctx, loadingWs.Name); err != nil {
		t.Fatalf("ActivateLoadingWorksheet: %v", err)
	}
	if _, err = workflow.CompleteLoadingWorksheet(ctx, loadingWs.Name, "TRK-0042"); err != nil {
		t.Fatalf("CompleteLoadingWorksheet: %v", err)
	}

	rg, err = models.GetReleaseGoodByName(ctx, rg.Name)
	if err != nil {
		t.Fatalf("GetReleaseGoodByName: %v", err)
	}
	if rg.Status != models.OrderStatusDone {
		t.Fatalf("order status = %s, want DONE", rg.Status)
	}
	if rg.TruckNo != "TRK-0042" {
		t.Fatalf("truck no = %q, want TRK-0042", rg.TruckNo)
	}
	for _, line := range rg.OrderInventories {
		if line.Status != models.OrderInventoryStatusLoaded {
			t.Fatalf("line %s status = %s, want LOADED", line.Name, line.Status)
		}
	}

	// The lock recalc tool sees no drift on a consistent database.
	report, err := models.RecalculateInventoryLocks(ctx, fx.domainId, true)
	if err != nil {
		t.Fatalf("RecalculateInventoryLocks: %v", err)
	}
	if len(report.Drifted) != 0 {
		t.Fatalf("expected no lock drift, got %+v", report.Drifted)
	}
}

func TestDomainLockHeldUntilReleased(t *testing.T) {
	fx := setupReleaseOrderFixture(t)
	ctx := fx.ctx

	lock, err := utils.DomainLock(ctx, fx.domainId, "ReleaseGoodLock", "models", "TestA")
	if err != nil {
		t.Fatalf("DomainLock: %v", err)
	}

	// While the first caller holds the lock, a second obtain must fail.
	if _, err := utils.DomainLock(ctx, fx.domainId, "ReleaseGoodLock", "models", "TestB"); err == nil {
		t.Fatal("expected second obtain to fail while the lock is held")
	}

	if err := lock.Release(ctx); err != nil {
		t.Fatalf("Release: %v", err)
	}

	lock, err = utils.DomainLock(ctx, fx.domainId, "ReleaseGoodLock", "models", "TestC")
	if err != nil {
		t.Fatalf("DomainLock after release: %v", err)
	}
	_ = lock.Release(ctx)
}

func startRedisContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("warehouse-test-redis-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-p", "127.0.0.1:0:6379",
		"redis:7-alpine",
	)
	if err != nil {
		t.Fatalf("start redis container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "6379/tcp")
	if err != nil {
		t.Fatalf("redis docker port: %v", err)
	}
	// wait until ready
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "redis-cli", "ping")
		if err == nil {
			return name, port
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatalf("redis did not become ready")
	return "", ""
}

func startMySQLContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("warehouse-test-mysql-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-e", "MYSQL_ROOT_PASSWORD=testpw",
		"-e", "MYSQL_DATABASE=warehouse_test",
		"-p", "127.0.0.1:0:3306",
		"mysql:8.0",
		"--default-authentication-plugin=mysql_native_password",
	)
	if err != nil {
		t.Fatalf("start mysql container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "3306/tcp")
	if err != nil {
		t.Fatalf("mysql docker port: %v", err)
	}
	// wait until ready
	deadline := time.Now().Add(120 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "mysqladmin", "ping", "-h", "127.0.0.1", "-ptestpw", "--silent")
		if err == nil {
			return name, port
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("mysql did not become ready")
	return "", ""
}

func dockerHostPort(container, portProto string) (string, error) {
	out, err := dockerRun("port", container, portProto)
	if err != nil {
		return "", fmt.Errorf("docker port: %w: %s", err, out)
	}
	// Example: "127.0.0.1:49154\n"
	re := regexp.MustCompile(`:(\d+)`)
	m := re.FindStringSubmatch(out)
	if len(m) != 2 {
		return "", fmt.Errorf("unexpected docker port output: %q", out)
	}
	return m[1], nil
}

func dockerRmForce(container string) error {
	if strings.TrimSpace(container) == "" {
		return nil
	}
	_, err := dockerRun("rm", "-f", container)
	return err
}

func dockerRun(args ...string) (string, error) {
	cmd := exec.Command("docker", args...)
	b, err := cmd.CombinedOutput()
	return string(b), err
}
