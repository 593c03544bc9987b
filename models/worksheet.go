package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Worksheet is the work instruction derived from a release order:
// one PICKING worksheet (pull pallets) and one LOADING worksheet (load truck).
type Worksheet struct {
	ID            int               `gorm:"primary_key" json:"id"`
	DomainId      string            `gorm:"index;not null" json:"domain_id"`
	Name          string            `gorm:"size:100;not null" json:"name"`
	Type          WorksheetType     `gorm:"type:enum('PICKING', 'LOADING', 'PUTAWAY');not null" json:"type"`
	Status        WorksheetStatus   `gorm:"type:enum('DEACTIVATED', 'ACTIVE', 'DONE', 'CANCELLED');default:DEACTIVATED" json:"status"`
	ReleaseGoodId int               `gorm:"index" json:"release_good_id"`
	BizplaceId    int               `gorm:"index" json:"bizplace_id"`
	StartedAt     *time.Time        `json:"started_at"`
	EndedAt       *time.Time        `json:"ended_at"`
	Details       []WorksheetDetail `gorm:"foreignKey:WorksheetId" json:"details"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// WorksheetDetail is one task of a worksheet, tied to a release order line.
type WorksheetDetail struct {
	ID               int             `gorm:"primary_key" json:"id"`
	DomainId         string          `gorm:"index;not null" json:"domain_id"`
	WorksheetId      int             `gorm:"index;not null" json:"worksheet_id"`
	Name             string          `gorm:"size:100;not null" json:"name"`
	Type             WorksheetType   `gorm:"type:enum('PICKING', 'LOADING', 'PUTAWAY');not null" json:"type"`
	Status           WorksheetStatus `gorm:"type:enum('DEACTIVATED', 'ACTIVE', 'DONE', 'CANCELLED');default:DEACTIVATED" json:"status"`
	OrderInventoryId int             `gorm:"index;not null" json:"order_inventory_id"`
	InventoryId      int             `gorm:"index" json:"inventory_id"`
	TargetQty        decimal.Decimal `gorm:"type:decimal(20, 4);default:0" json:"target_qty"`
	TargetWeight     decimal.Decimal `gorm:"type:decimal(20, 4);default:0" json:"target_weight"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func generateWorksheetDetailName() string {
	return "WSD-" + strings.ToUpper(uuid.NewString()[:8])
}

// active worksheet of the release order for the given type, nil when none exists
func FindReleaseGoodWorksheet(tx *gorm.DB, ctx context.Context, domainId string, releaseGoodId int, wsType WorksheetType) (*Worksheet, error) {
	var worksheet Worksheet
	err := tx.WithContext(ctx).
		Where("domain_id = ? AND release_good_id = ? AND type = ? AND status <> ?",
			domainId, releaseGoodId, wsType, WorksheetStatusCancelled).
		First(&worksheet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &worksheet, nil
}

// create one picking task for a release order line; the detail starts
// DEACTIVATED until the worksheet is re-activated by the office
func GeneratePickingWorksheetDetail(tx *gorm.DB, ctx context.Context, worksheet *Worksheet, oi *OrderInventory) (*WorksheetDetail, error) {
	detail := WorksheetDetail{
		DomainId:         worksheet.DomainId,
		WorksheetId:      worksheet.ID,
		Name:             generateWorksheetDetailName(),
		Type:             WorksheetTypePicking,
		Status:           WorksheetStatusDeactivated,
		OrderInventoryId: oi.ID,
		InventoryId:      utils.DereferencePtr(oi.InventoryId),
		TargetQty:        oi.ReleaseQty,
		TargetWeight:     oi.ReleaseWeight,
	}
	if err := tx.WithContext(ctx).Create(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

// create one loading task for a picked release order line
func GenerateLoadingWorksheetDetail(tx *gorm.DB, ctx context.Context, worksheet *Worksheet, oi *OrderInventory) (*WorksheetDetail, error) {
	detail := WorksheetDetail{
		DomainId:         worksheet.DomainId,
		WorksheetId:      worksheet.ID,
		Name:             generateWorksheetDetailName(),
		Type:             WorksheetTypeLoading,
		Status:           WorksheetStatusDeactivated,
		OrderInventoryId: oi.ID,
		InventoryId:      utils.DereferencePtr(oi.InventoryId),
		TargetQty:        oi.ReleaseQty,
		TargetWeight:     oi.ReleaseWeight,
	}
	if err := tx.WithContext(ctx).Create(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

// flip the details of a release order line to the given status
func updateWorksheetDetailStatus(tx *gorm.DB, ctx context.Context, domainId string, orderInventoryId int, status WorksheetStatus) error {
	return tx.WithContext(ctx).Model(&WorksheetDetail{}).
		Where("domain_id = ? AND order_inventory_id = ? AND status <> ?",
			domainId, orderInventoryId, WorksheetStatusCancelled).
		Update("status", status).Error
}

// deactivate the picking & loading worksheets of the release order so the
// office re-activates them after reviewing the edited lines
func deactivateReleaseGoodWorksheets(tx *gorm.DB, ctx context.Context, domainId string, releaseGoodId int) error {
	return tx.WithContext(ctx).Model(&Worksheet{}).
		Where("domain_id = ? AND release_good_id = ? AND type IN ? AND status <> ?",
			domainId, releaseGoodId,
			[]WorksheetType{WorksheetTypePicking, WorksheetTypeLoading},
			WorksheetStatusCancelled).
		Update("status", WorksheetStatusDeactivated).Error
}

func cancelReleaseGoodWorksheets(tx *gorm.DB, ctx context.Context, domainId string, releaseGoodId int) error {
	var worksheetIds []int
	if err := tx.WithContext(ctx).Model(&Worksheet{}).
		Where("domain_id = ? AND release_good_id = ?", domainId, releaseGoodId).
		Select("id").Scan(&worksheetIds).Error; err != nil {
		return err
	}
	if len(worksheetIds) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Model(&WorksheetDetail{}).
		Where("worksheet_id IN ?", worksheetIds).
		Update("status", WorksheetStatusCancelled).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Model(&Worksheet{}).
		Where("id IN ?", worksheetIds).
		Update("status", WorksheetStatusCancelled).Error
}

func GetWorksheet(ctx context.Context, id int) (*Worksheet, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}
	return utils.FetchModel[Worksheet](ctx, domainId, id, "Details")
}

func GetWorksheetByName(ctx context.Context, name string) (*Worksheet, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var worksheet Worksheet
	if err := db.WithContext(ctx).Preload("Details").
		Where("domain_id = ? AND name = ?", domainId, name).
		First(&worksheet).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &worksheet, nil
}

type WorksheetFilter struct {
	Type          *WorksheetType   `json:"type"`
	Status        *WorksheetStatus `json:"status"`
	ReleaseGoodId *int             `json:"release_good_id"`
}

func ListWorksheet(ctx context.Context, filter *WorksheetFilter) ([]*Worksheet, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var results []*Worksheet

	dbCtx := db.WithContext(ctx).Where("domain_id = ?", domainId)
	if filter != nil {
		if filter.Type != nil {
			dbCtx = dbCtx.Where("type = ?", *filter.Type)
		}
		if filter.Status != nil {
			dbCtx = dbCtx.Where("status = ?", *filter.Status)
		}
		if filter.ReleaseGoodId != nil && *filter.ReleaseGoodId > 0 {
			dbCtx = dbCtx.Where("release_good_id = ?", *filter.ReleaseGoodId)
		}
	}
	// db query
	err := dbCtx.Preload("Details").Order("id DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
