package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/models"
	"github.com/mmdatafocus/warehouse_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GeneratePickingWorksheet builds the picking work instruction for a release
// order: one DEACTIVATED worksheet with one task per active line. The order
// and its lines move to READY_TO_PICK.
func GeneratePickingWorksheet(ctx context.Context, releaseGoodName string) (*models.Worksheet, error) {
	logger := config.GetLogger()

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	releaseGood, err := models.GetReleaseGoodByName(ctx, releaseGoodName)
	if err != nil {
		return nil, err
	}
	if releaseGood.Status != models.OrderStatusPending {
		return nil, errors.New("release order is not pending")
	}

	db := config.GetDB()
	tx := db.Begin()

	existing, err := models.FindReleaseGoodWorksheet(tx, ctx, domainId, releaseGood.ID, models.WorksheetTypePicking)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if existing != nil {
		tx.Rollback()
		return nil, fmt.Errorf("picking worksheet already exists for %s", releaseGoodName)
	}

	worksheet := models.Worksheet{
		DomainId:      domainId,
		Name:          "WS-" + releaseGood.Name,
		Type:          models.WorksheetTypePicking,
		Status:        models.WorksheetStatusDeactivated,
		ReleaseGoodId: releaseGood.ID,
		BizplaceId:    releaseGood.BizplaceId,
	}
	if err := tx.WithContext(ctx).Create(&worksheet).Error; err != nil {
		tx.Rollback()
		config.LogError(logger, "pickingWorkflow.go", "GeneratePickingWorksheet", "CreateWorksheet", releaseGoodName, err)
		return nil, err
	}

	for i := range releaseGood.OrderInventories {
		oi := &releaseGood.OrderInventories[i]
		if oi.IsCancelled() {
			continue
		}
		if _, err := models.GeneratePickingWorksheetDetail(tx, ctx, &worksheet, oi); err != nil {
			tx.Rollback()
			config.LogError(logger, "pickingWorkflow.go", "GeneratePickingWorksheet", "CreateWorksheetDetail", oi.Name, err)
			return nil, err
		}
		if err := tx.WithContext(ctx).Model(oi).
			Update("status", models.OrderInventoryStatusReadyToPick).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.WithContext(ctx).Model(releaseGood).
		Update("status", models.OrderStatusReadyToPick).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return models.GetWorksheetByName(ctx, worksheet.Name)
}

// ActivatePickingWorksheet puts the worksheet and its tasks to work.
func ActivatePickingWorksheet(ctx context.Context, worksheetName string) (*models.Worksheet, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	worksheet, err := models.GetWorksheetByName(ctx, worksheetName)
	if err != nil {
		return nil, err
	}
	if worksheet.Type != models.WorksheetTypePicking {
		return nil, errors.New("not a picking worksheet")
	}
	if worksheet.Status != models.WorksheetStatusDeactivated {
		return nil, errors.New("worksheet is not deactivated")
	}

	db := config.GetDB()
	tx := db.Begin()

	now := time.Now()
	if err := tx.WithContext(ctx).Model(worksheet).Updates(map[string]interface{}{
		"Status":    models.WorksheetStatusActive,
		"StartedAt": &now,
	}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.WithContext(ctx).Model(&models.WorksheetDetail{}).
		Where("worksheet_id = ? AND status = ?", worksheet.ID, models.WorksheetStatusDeactivated).
		Update("status", models.WorksheetStatusActive).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// lines move to PICKING
	for _, detail := range worksheet.Details {
		if detail.Status == models.WorksheetStatusCancelled {
			continue
		}
		if err := tx.WithContext(ctx).Model(&models.OrderInventory{}).
			Where("id = ?", detail.OrderInventoryId).
			Update("status", models.OrderInventoryStatusPicking).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.WithContext(ctx).Model(&models.ReleaseGood{}).
		Where("id = ?", worksheet.ReleaseGoodId).
		Update("status", models.OrderStatusPicking).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return models.GetWorksheetByName(ctx, worksheetName)
}

// PickedItemInput reports what a worker actually pulled for one task.
type PickedItemInput struct {
	WorksheetDetailName string          `json:"worksheet_detail_name" binding:"required"`
	Qty                 decimal.Decimal `json:"qty"`
	Weight              decimal.Decimal `json:"weight"`
}

// CompletePickingWorksheet books the picked quantities out of the pallets,
// writes the picking ledger rows, closes the worksheet and generates the
// loading worksheet.
func CompletePickingWorksheet(ctx context.Context, worksheetName string, pickedItems []PickedItemInput) (*models.Worksheet, error) {
	logger := config.GetLogger()

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	lock, err := utils.DomainLock(ctx, domainId, "ReleaseGoodLock", "workflow", "CompletePickingWorksheet")
	if err != nil {
		return nil, err
	}
	defer func() { _ = lock.Release(ctx) }()

	worksheet, err := models.GetWorksheetByName(ctx, worksheetName)
	if err != nil {
		return nil, err
	}
	if worksheet.Type != models.WorksheetTypePicking {
		return nil, errors.New("not a picking worksheet")
	}
	if worksheet.Status != models.WorksheetStatusActive {
		return nil, errors.New("worksheet is not active")
	}

	releaseGood, err := models.GetReleaseGood(ctx, worksheet.ReleaseGoodId)
	if err != nil {
		return nil, err
	}

	detailsByName := make(map[string]*models.WorksheetDetail, len(worksheet.Details))
	for i := range worksheet.Details {
		detailsByName[worksheet.Details[i].Name] = &worksheet.Details[i]
	}

	db := config.GetDB()
	tx := db.Begin()

	for _, item := range pickedItems {
		detail, ok := detailsByName[item.WorksheetDetailName]
		if !ok {
			tx.Rollback()
			return nil, fmt.Errorf("worksheet detail %s not found on %s", item.WorksheetDetailName, worksheetName)
		}
		if detail.Status != models.WorksheetStatusActive {
			tx.Rollback()
			return nil, fmt.Errorf("worksheet detail %s is not active", detail.Name)
		}
		if item.Qty.IsNegative() || item.Qty.IsZero() {
			tx.Rollback()
			return nil, errors.New("picked qty must be positive")
		}
		if item.Qty.GreaterThan(detail.TargetQty) {
			tx.Rollback()
			return nil, fmt.Errorf("picked qty %s exceeds target %s of %s", item.Qty.String(), detail.TargetQty.String(), detail.Name)
		}

		if err := bookPicking(tx, ctx, releaseGood, detail, item.Qty, item.Weight); err != nil {
			tx.Rollback()
			config.LogError(logger, "pickingWorkflow.go", "CompletePickingWorksheet", "bookPicking", detail.Name, err)
			return nil, err
		}

		if err := tx.WithContext(ctx).Model(detail).
			Update("status", models.WorksheetStatusDone).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.WithContext(ctx).Model(&models.OrderInventory{}).
			Where("id = ?", detail.OrderInventoryId).
			Update("status", models.OrderInventoryStatusPicked).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	now := time.Now()
	if err := tx.WithContext(ctx).Model(worksheet).Updates(map[string]interface{}{
		"Status":  models.WorksheetStatusDone,
		"EndedAt": &now,
	}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.WithContext(ctx).Model(&models.ReleaseGood{}).
		Where("id = ?", releaseGood.ID).
		Update("status", models.OrderStatusReadyToLoad).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// loading worksheet for the picked lines
	if err := generateLoadingWorksheet(tx, ctx, releaseGood); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return models.GetWorksheetByName(ctx, worksheetName)
}

// take the picked amount off the pallet and write the ledger row
func bookPicking(tx *gorm.DB, ctx context.Context, releaseGood *models.ReleaseGood, detail *models.WorksheetDetail, qty decimal.Decimal, weight decimal.Decimal) error {
	if detail.InventoryId == 0 {
		return fmt.Errorf("picking task %s has no pallet assigned", detail.Name)
	}
	var inventory models.Inventory
	if err := tx.WithContext(ctx).First(&inventory, detail.InventoryId).Error; err != nil {
		return fmt.Errorf("inventory %d not found", detail.InventoryId)
	}
	if qty.GreaterThan(inventory.Qty) {
		return fmt.Errorf("picked qty %s exceeds pallet %s qty %s", qty.String(), inventory.PalletId, inventory.Qty.String())
	}

	openingQty := inventory.Qty
	openingWeight := inventory.Weight

	newQty := inventory.Qty.Sub(qty)
	newWeight := inventory.Weight.Sub(weight)
	newLockedQty := inventory.LockedQty.Sub(qty)
	newLockedWeight := inventory.LockedWeight.Sub(weight)

	updates := map[string]interface{}{
		"Qty":          newQty,
		"Weight":       newWeight,
		"LockedQty":    newLockedQty,
		"LockedWeight": newLockedWeight,
	}
	if newQty.IsZero() {
		updates["Status"] = models.InventoryStatusTerminated
	}
	if err := tx.WithContext(ctx).Model(&inventory).Updates(updates).Error; err != nil {
		return err
	}

	inventory.Qty = newQty
	inventory.Weight = newWeight
	if newQty.IsZero() {
		inventory.Status = models.InventoryStatusTerminated
	}
	return models.AppendInventoryHistory(tx, ctx, &inventory, models.InventoryTransactionTypePicking,
		qty.Neg(), weight.Neg(), openingQty, openingWeight, releaseGood.Name)
}
