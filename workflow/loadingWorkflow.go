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

// one LOADING worksheet per release order, created when picking completes
func generateLoadingWorksheet(tx *gorm.DB, ctx context.Context, releaseGood *models.ReleaseGood) error {
	logger := config.GetLogger()

	existing, err := models.FindReleaseGoodWorksheet(tx, ctx, releaseGood.DomainId, releaseGood.ID, models.WorksheetTypeLoading)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	worksheet := models.Worksheet{
		DomainId:      releaseGood.DomainId,
		Name:          "WS-L-" + releaseGood.Name,
		Type:          models.WorksheetTypeLoading,
		Status:        models.WorksheetStatusDeactivated,
		ReleaseGoodId: releaseGood.ID,
		BizplaceId:    releaseGood.BizplaceId,
	}
	if err := tx.WithContext(ctx).Create(&worksheet).Error; err != nil {
		config.LogError(logger, "loadingWorkflow.go", "generateLoadingWorksheet", "CreateWorksheet", releaseGood.Name, err)
		return err
	}

	var lines []models.OrderInventory
	if err := tx.WithContext(ctx).
		Where("domain_id = ? AND release_good_id = ? AND status = ?",
			releaseGood.DomainId, releaseGood.ID, models.OrderInventoryStatusPicked).
		Find(&lines).Error; err != nil {
		return err
	}
	for i := range lines {
		if _, err := models.GenerateLoadingWorksheetDetail(tx, ctx, &worksheet, &lines[i]); err != nil {
			config.LogError(logger, "loadingWorkflow.go", "generateLoadingWorksheet", "CreateWorksheetDetail", lines[i].Name, err)
			return err
		}
	}
	return nil
}

// ActivateLoadingWorksheet puts the loading worksheet and its tasks to work.
func ActivateLoadingWorksheet(ctx context.Context, worksheetName string) (*models.Worksheet, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	worksheet, err := models.GetWorksheetByName(ctx, worksheetName)
	if err != nil {
		return nil, err
	}
	if worksheet.Type != models.WorksheetTypeLoading {
		return nil, errors.New("not a loading worksheet")
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

	if err := tx.WithContext(ctx).Model(&models.ReleaseGood{}).
		Where("id = ?", worksheet.ReleaseGoodId).
		Update("status", models.OrderStatusLoading).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return models.GetWorksheetByName(ctx, worksheetName)
}

// CompleteLoadingWorksheet writes the loading ledger rows, marks the lines
// LOADED, closes the worksheet and finishes the release order.
func CompleteLoadingWorksheet(ctx context.Context, worksheetName string, truckNo string) (*models.Worksheet, error) {
	logger := config.GetLogger()

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	lock, err := utils.DomainLock(ctx, domainId, "ReleaseGoodLock", "workflow", "CompleteLoadingWorksheet")
	if err != nil {
		return nil, err
	}
	defer func() { _ = lock.Release(ctx) }()

	worksheet, err := models.GetWorksheetByName(ctx, worksheetName)
	if err != nil {
		return nil, err
	}
	if worksheet.Type != models.WorksheetTypeLoading {
		return nil, errors.New("not a loading worksheet")
	}
	if worksheet.Status != models.WorksheetStatusActive {
		return nil, errors.New("worksheet is not active")
	}

	releaseGood, err := models.GetReleaseGood(ctx, worksheet.ReleaseGoodId)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()

	for i := range worksheet.Details {
		detail := &worksheet.Details[i]
		if detail.Status != models.WorksheetStatusActive {
			continue
		}

		var inventory models.Inventory
		if err := tx.WithContext(ctx).First(&inventory, detail.InventoryId).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("inventory %d not found", detail.InventoryId)
		}

		// picking already burned the stock, loading only records the movement
		if err := models.AppendInventoryHistory(tx, ctx, &inventory, models.InventoryTransactionTypeLoading,
			decimal.Zero, decimal.Zero,
			inventory.Qty, inventory.Weight, releaseGood.Name); err != nil {
			tx.Rollback()
			config.LogError(logger, "loadingWorkflow.go", "CompleteLoadingWorksheet", "AppendInventoryHistory", detail.Name, err)
			return nil, err
		}

		if err := tx.WithContext(ctx).Model(detail).
			Update("status", models.WorksheetStatusDone).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.WithContext(ctx).Model(&models.OrderInventory{}).
			Where("id = ?", detail.OrderInventoryId).
			Update("status", models.OrderInventoryStatusLoaded).Error; err != nil {
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

	updates := map[string]interface{}{"Status": models.OrderStatusDone}
	if truckNo != "" {
		updates["TruckNo"] = truckNo
	}
	if err := tx.WithContext(ctx).Model(&models.ReleaseGood{}).
		Where("id = ?", releaseGood.ID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return models.GetWorksheetByName(ctx, worksheetName)
}
