package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReleaseGoodProductInput is a requested new line of a release order.
// InventoryId is optional: a line without it is a product-level request
// that reserves no specific pallet.
type ReleaseGoodProductInput struct {
	ProductId     int             `json:"product_id" binding:"required"`
	InventoryId   *int            `json:"inventory_id"`
	BatchId       string          `json:"batch_id"`
	PackingType   string          `json:"packing_type"`
	ReleaseQty    decimal.Decimal `json:"release_qty"`
	ReleaseWeight decimal.Decimal `json:"release_weight"`
	CrossDocking  *bool           `json:"cross_docking"`
}

func (input *ReleaseGoodProductInput) validate() error {
	if input.ProductId <= 0 {
		return errors.New("product id is required")
	}
	if input.InventoryId != nil && *input.InventoryId <= 0 {
		return errors.New("inventory id must be positive")
	}
	if input.ReleaseQty.IsNegative() || input.ReleaseWeight.IsNegative() {
		return errors.New("release qty and weight cannot be negative")
	}
	if input.ReleaseQty.IsZero() {
		return errors.New("release qty is required")
	}
	return nil
}

// ExistingOrderInventoryInput addresses a line already on the release order
// by its reservation key and carries the requested amount. Qty zero cancels
// the line.
type ExistingOrderInventoryInput struct {
	ProductId     int             `json:"product_id" binding:"required"`
	InventoryId   *int            `json:"inventory_id"`
	BatchId       string          `json:"batch_id"`
	PackingType   string          `json:"packing_type"`
	ReleaseQty    decimal.Decimal `json:"release_qty"`
	ReleaseWeight decimal.Decimal `json:"release_weight"`
}

type lineChange int

const (
	lineChangeNoop lineChange = iota
	lineChangeCancel
	lineChangeReduce
	lineChangeIncrease
)

// classifyLineChange decides what an edit does to an existing line.
func classifyLineChange(currentQty, requestedQty decimal.Decimal) lineChange {
	switch {
	case requestedQty.IsZero():
		return lineChangeCancel
	case requestedQty.LessThan(currentQty):
		return lineChangeReduce
	case requestedQty.GreaterThan(currentQty):
		return lineChangeIncrease
	default:
		return lineChangeNoop
	}
}

// a line cannot be reduced below what workers already picked for it
func validatePickedQty(requestedQty, pickedQty decimal.Decimal) error {
	if requestedQty.LessThan(pickedQty) {
		return fmt.Errorf("requested qty %s is less than already picked qty %s", requestedQty.String(), pickedQty.String())
	}
	return nil
}

func generateOrderInventoryName() string {
	return "ORD-I-" + strings.ToUpper(uuid.NewString()[:8])
}

// AddReleaseGoodProducts reconciles the lines of a release order in one
// transaction: existing lines are cancelled or resized first, then new lines
// are reserved (merging into a matching line when one exists). The picking and
// loading worksheets are deactivated so the office reviews the edit before
// work resumes.
func AddReleaseGoodProducts(ctx context.Context, name string, newLines []ReleaseGoodProductInput, existingLines []ExistingOrderInventoryInput) (*ReleaseGood, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	for i := range newLines {
		if err := newLines[i].validate(); err != nil {
			return nil, err
		}
	}

	lock, err := utils.DomainLock(ctx, domainId, "ReleaseGoodLock", "models", "AddReleaseGoodProducts")
	if err != nil {
		return nil, err
	}
	defer func() { _ = lock.Release(ctx) }()

	releaseGood, err := GetReleaseGoodByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if releaseGood.Status == OrderStatusDone || releaseGood.Status == OrderStatusCancelled {
		return nil, errors.New("release order can no longer be edited")
	}

	db := config.GetDB()
	tx := db.Begin()

	pickingWs, err := FindReleaseGoodWorksheet(tx, ctx, domainId, releaseGood.ID, WorksheetTypePicking)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// existing lines first, so freed reservations are visible to new lines
	for i := range existingLines {
		in := &existingLines[i]
		oi := findActiveOrderInventory(releaseGood, in)
		if oi == nil {
			tx.Rollback()
			return nil, fmt.Errorf("active order line for product %d not found on %s", in.ProductId, name)
		}

		switch classifyLineChange(oi.ReleaseQty, in.ReleaseQty) {
		case lineChangeCancel:
			if err := cancelOrderInventory(tx, ctx, releaseGood, oi); err != nil {
				tx.Rollback()
				return nil, err
			}
		case lineChangeReduce, lineChangeIncrease:
			if err := resizeOrderInventory(tx, ctx, releaseGood, oi, in.ReleaseQty, in.ReleaseWeight, true); err != nil {
				tx.Rollback()
				return nil, err
			}
		case lineChangeNoop:
			if oi.ReleaseWeight.Equal(in.ReleaseWeight) {
				continue
			}
			// weight-only change adjusts the reservation but the work
			// instruction stays confirmed
			if err := resizeOrderInventory(tx, ctx, releaseGood, oi, in.ReleaseQty, in.ReleaseWeight, false); err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	// then the new lines
	for i := range newLines {
		in := &newLines[i]
		match := findMatchingOrderInventory(releaseGood, in)
		if match == nil {
			oi, err := addNewOrderInventory(tx, ctx, releaseGood, in, pickingWs)
			if err != nil {
				tx.Rollback()
				return nil, err
			}
			releaseGood.OrderInventories = append(releaseGood.OrderInventories, *oi)
			continue
		}
		if match.IsCancelled() {
			if err := reactivateOrderInventory(tx, ctx, releaseGood, match, in, pickingWs); err != nil {
				tx.Rollback()
				return nil, err
			}
		} else {
			if err := mergeOrderInventory(tx, ctx, releaseGood, match, in); err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	// any edit invalidates the current work instructions
	if err := deactivateReleaseGoodWorksheets(tx, ctx, domainId, releaseGood.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return GetReleaseGoodByName(ctx, name)
}

func sameInventoryRef(lineInventoryId *int, requested *int) bool {
	if requested == nil {
		return lineInventoryId == nil
	}
	return lineInventoryId != nil && *lineInventoryId == *requested
}

// an existing-line change addresses an active line by its reservation key
func findActiveOrderInventory(releaseGood *ReleaseGood, in *ExistingOrderInventoryInput) *OrderInventory {
	for i := range releaseGood.OrderInventories {
		oi := &releaseGood.OrderInventories[i]
		if oi.IsCancelled() {
			continue
		}
		if oi.ProductId != in.ProductId || oi.BatchId != in.BatchId || oi.PackingType != in.PackingType {
			continue
		}
		if !sameInventoryRef(oi.InventoryId, in.InventoryId) {
			continue
		}
		return oi
	}
	return nil
}

// a new line with a pallet merges into the line of the same product, batch,
// packing type and pallet; a product-level line matches on product, batch and
// packing type with no pallet constraint
func findMatchingOrderInventory(releaseGood *ReleaseGood, input *ReleaseGoodProductInput) *OrderInventory {
	for i := range releaseGood.OrderInventories {
		oi := &releaseGood.OrderInventories[i]
		if oi.ProductId != input.ProductId ||
			oi.BatchId != input.BatchId ||
			oi.PackingType != input.PackingType {
			continue
		}
		if input.InventoryId != nil && !sameInventoryRef(oi.InventoryId, input.InventoryId) {
			continue
		}
		return oi
	}
	return nil
}

func fetchOrderedInventory(tx *gorm.DB, ctx context.Context, inventoryId int) (*Inventory, error) {
	var inventory Inventory
	if err := tx.WithContext(ctx).First(&inventory, inventoryId).Error; err != nil {
		return nil, fmt.Errorf("inventory %d not found", inventoryId)
	}
	return &inventory, nil
}

// cancelOrderInventory releases the line's reservation and cancels the line
// and its worksheet details. The cancelled line keeps zero quantities.
func cancelOrderInventory(tx *gorm.DB, ctx context.Context, releaseGood *ReleaseGood, oi *OrderInventory) error {
	if oi.InventoryId != nil {
		inventory, err := fetchOrderedInventory(tx, ctx, *oi.InventoryId)
		if err != nil {
			return err
		}

		// give back exactly what this line had reserved
		if err := tx.WithContext(ctx).Model(&inventory).Updates(map[string]interface{}{
			"LockedQty":    inventory.LockedQty.Sub(oi.ReleaseQty),
			"LockedWeight": inventory.LockedWeight.Sub(oi.ReleaseWeight),
		}).Error; err != nil {
			return err
		}
	}

	if err := tx.WithContext(ctx).Model(&oi).Updates(map[string]interface{}{
		"Status":        OrderInventoryStatusCancelled,
		"ReleaseQty":    decimal.Zero,
		"ReleaseWeight": decimal.Zero,
	}).Error; err != nil {
		return err
	}
	oi.Status = OrderInventoryStatusCancelled
	oi.ReleaseQty = decimal.Zero
	oi.ReleaseWeight = decimal.Zero

	return updateWorksheetDetailStatus(tx, ctx, releaseGood.DomainId, oi.ID, WorksheetStatusCancelled)
}

// resizeOrderInventory sets the line to the requested amount. The pallet's
// reservation is overwritten with the requested amount, and the line cannot
// shrink below what was already picked for this order. The work instruction
// is deactivated only when the quantity itself changed.
func resizeOrderInventory(tx *gorm.DB, ctx context.Context, releaseGood *ReleaseGood, oi *OrderInventory, qty decimal.Decimal, weight decimal.Decimal, qtyChanged bool) error {
	if oi.InventoryId != nil {
		inventory, err := fetchOrderedInventory(tx, ctx, *oi.InventoryId)
		if err != nil {
			return err
		}

		picked, err := GetPickedQty(tx, ctx, releaseGood.DomainId, releaseGood.Name, inventory.PalletId)
		if err != nil {
			return err
		}
		if err := validatePickedQty(qty, picked); err != nil {
			return err
		}

		if qty.GreaterThan(inventory.Qty) {
			return fmt.Errorf("requested qty %s exceeds pallet %s qty %s", qty.String(), inventory.PalletId, inventory.Qty.String())
		}

		if err := tx.WithContext(ctx).Model(&inventory).Updates(map[string]interface{}{
			"LockedQty":    qty,
			"LockedWeight": weight,
		}).Error; err != nil {
			return err
		}
	}

	if err := tx.WithContext(ctx).Model(&oi).Updates(map[string]interface{}{
		"ReleaseQty":    qty,
		"ReleaseWeight": weight,
	}).Error; err != nil {
		return err
	}
	oi.ReleaseQty = qty
	oi.ReleaseWeight = weight

	if !qtyChanged {
		return nil
	}
	return updateWorksheetDetailStatus(tx, ctx, releaseGood.DomainId, oi.ID, WorksheetStatusDeactivated)
}

// addNewOrderInventory reserves inventory for a brand-new line and generates
// its picking task when a picking worksheet already exists. The line starts
// PICKING when the order is already being picked, PENDING otherwise.
func addNewOrderInventory(tx *gorm.DB, ctx context.Context, releaseGood *ReleaseGood, input *ReleaseGoodProductInput, pickingWs *Worksheet) (*OrderInventory, error) {
	crossDocking := input.CrossDocking
	if crossDocking == nil {
		crossDocking = utils.NewFalse()
	}

	if input.InventoryId != nil {
		inventory, err := fetchOrderedInventory(tx, ctx, *input.InventoryId)
		if err != nil {
			return nil, err
		}
		if inventory.ProductId != input.ProductId {
			return nil, fmt.Errorf("pallet %s does not hold product %d", inventory.PalletId, input.ProductId)
		}

		// pallets still on the dock can only be released as a cross-docking line
		if inventory.Status != InventoryStatusStored {
			if inventory.Status != InventoryStatusUnloaded {
				return nil, fmt.Errorf("pallet %s is not in stock", inventory.PalletId)
			}
			if !*crossDocking {
				return nil, fmt.Errorf("pallet %s is not put away yet", inventory.PalletId)
			}
			if !config.CrossDockingEnabled() {
				return nil, errors.New("cross docking is disabled")
			}
		}

		remain := inventory.Qty.Sub(inventory.LockedQty)
		if input.ReleaseQty.GreaterThan(remain) {
			return nil, fmt.Errorf("requested qty %s exceeds remaining qty %s of pallet %s", input.ReleaseQty.String(), remain.String(), inventory.PalletId)
		}

		if err := tx.WithContext(ctx).Model(&inventory).Updates(map[string]interface{}{
			"LockedQty":    inventory.LockedQty.Add(input.ReleaseQty),
			"LockedWeight": inventory.LockedWeight.Add(input.ReleaseWeight),
		}).Error; err != nil {
			return nil, err
		}
	}

	status := OrderInventoryStatusPending
	if pickingWs != nil {
		status = OrderInventoryStatusPicking
	}
	oi := OrderInventory{
		DomainId:      releaseGood.DomainId,
		ReleaseGoodId: releaseGood.ID,
		Name:          generateOrderInventoryName(),
		BizplaceId:    releaseGood.BizplaceId,
		ProductId:     input.ProductId,
		InventoryId:   input.InventoryId,
		BatchId:       input.BatchId,
		PackingType:   input.PackingType,
		ReleaseQty:    input.ReleaseQty,
		ReleaseWeight: input.ReleaseWeight,
		Status:        status,
		CrossDocking:  crossDocking,
	}
	if err := tx.WithContext(ctx).Create(&oi).Error; err != nil {
		return nil, err
	}

	if pickingWs != nil {
		if _, err := GeneratePickingWorksheetDetail(tx, ctx, pickingWs, &oi); err != nil {
			return nil, err
		}
	}

	return &oi, nil
}

// mergeOrderInventory grows an active line by the requested amount. Only a
// request that references a pallet moves that pallet's reservation.
func mergeOrderInventory(tx *gorm.DB, ctx context.Context, releaseGood *ReleaseGood, oi *OrderInventory, input *ReleaseGoodProductInput) error {
	if input.InventoryId != nil {
		inventory, err := fetchOrderedInventory(tx, ctx, *input.InventoryId)
		if err != nil {
			return err
		}

		remain := inventory.Qty.Sub(inventory.LockedQty)
		if input.ReleaseQty.GreaterThan(remain) {
			return fmt.Errorf("requested qty %s exceeds remaining qty %s of pallet %s", input.ReleaseQty.String(), remain.String(), inventory.PalletId)
		}

		if err := tx.WithContext(ctx).Model(&inventory).Updates(map[string]interface{}{
			"LockedQty":    inventory.LockedQty.Add(input.ReleaseQty),
			"LockedWeight": inventory.LockedWeight.Add(input.ReleaseWeight),
		}).Error; err != nil {
			return err
		}
	}

	newQty := oi.ReleaseQty.Add(input.ReleaseQty)
	newWeight := oi.ReleaseWeight.Add(input.ReleaseWeight)
	if err := tx.WithContext(ctx).Model(&oi).Updates(map[string]interface{}{
		"ReleaseQty":    newQty,
		"ReleaseWeight": newWeight,
	}).Error; err != nil {
		return err
	}
	oi.ReleaseQty = newQty
	oi.ReleaseWeight = newWeight

	return updateWorksheetDetailStatus(tx, ctx, releaseGood.DomainId, oi.ID, WorksheetStatusDeactivated)
}

// reactivateOrderInventory revives a cancelled line for the requested amount.
// The line resumes PICKING when a picking worksheet exists, PENDING otherwise.
func reactivateOrderInventory(tx *gorm.DB, ctx context.Context, releaseGood *ReleaseGood, oi *OrderInventory, input *ReleaseGoodProductInput, pickingWs *Worksheet) error {
	if input.InventoryId != nil {
		inventory, err := fetchOrderedInventory(tx, ctx, *input.InventoryId)
		if err != nil {
			return err
		}

		remain := inventory.Qty.Sub(inventory.LockedQty)
		if input.ReleaseQty.GreaterThan(remain) {
			return fmt.Errorf("requested qty %s exceeds remaining qty %s of pallet %s", input.ReleaseQty.String(), remain.String(), inventory.PalletId)
		}

		if err := tx.WithContext(ctx).Model(&inventory).Updates(map[string]interface{}{
			"LockedQty":    inventory.LockedQty.Add(input.ReleaseQty),
			"LockedWeight": inventory.LockedWeight.Add(input.ReleaseWeight),
		}).Error; err != nil {
			return err
		}
	}

	status := OrderInventoryStatusPending
	if pickingWs != nil {
		status = OrderInventoryStatusPicking
	}
	if err := tx.WithContext(ctx).Model(&oi).Updates(map[string]interface{}{
		"ReleaseQty":    input.ReleaseQty,
		"ReleaseWeight": input.ReleaseWeight,
		"Status":        status,
	}).Error; err != nil {
		return err
	}
	oi.ReleaseQty = input.ReleaseQty
	oi.ReleaseWeight = input.ReleaseWeight
	oi.Status = status

	// revive or create the picking task
	var detailCount int64
	if err := tx.WithContext(ctx).Model(&WorksheetDetail{}).
		Where("domain_id = ? AND order_inventory_id = ?", releaseGood.DomainId, oi.ID).
		Count(&detailCount).Error; err != nil {
		return err
	}
	if detailCount > 0 {
		return tx.WithContext(ctx).Model(&WorksheetDetail{}).
			Where("domain_id = ? AND order_inventory_id = ?", releaseGood.DomainId, oi.ID).
			Update("status", WorksheetStatusDeactivated).Error
	}
	if pickingWs != nil {
		if _, err := GeneratePickingWorksheetDetail(tx, ctx, pickingWs, oi); err != nil {
			return err
		}
	}
	return nil
}
