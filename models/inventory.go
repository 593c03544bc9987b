package models

import (
	"context"
	"errors"
	"time"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Inventory is one pallet of a product stored at a location.
// Qty/Weight are what is physically on the pallet; LockedQty/LockedWeight are
// the portions reserved by not-yet-shipped release orders.
type Inventory struct {
	ID           int             `gorm:"primary_key" json:"id"`
	DomainId     string          `gorm:"index;not null" json:"domain_id"`
	BizplaceId   int             `gorm:"index;not null" json:"bizplace_id"`
	ProductId    int             `gorm:"index;not null" json:"product_id" binding:"required"`
	WarehouseId  int             `gorm:"index;not null" json:"warehouse_id" binding:"required"`
	LocationId   int             `gorm:"index" json:"location_id"`
	PalletId     string          `gorm:"size:100;not null;index:idx_inventories_pallet,unique,composite:domain_id" json:"pallet_id" binding:"required"`
	BatchId      string          `gorm:"size:100;index" json:"batch_id"`
	PackingType  string          `gorm:"size:50" json:"packing_type"`
	Qty          decimal.Decimal `gorm:"type:decimal(20, 4);default:0" json:"qty"`
	Weight       decimal.Decimal `gorm:"type:decimal(20, 4);default:0" json:"weight"`
	LockedQty    decimal.Decimal `gorm:"type:decimal(20, 4);default:0" json:"locked_qty"`
	LockedWeight decimal.Decimal `gorm:"type:decimal(20, 4);default:0" json:"locked_weight"`
	Status       InventoryStatus `gorm:"type:enum('UNLOADED', 'STORED', 'TERMINATED');default:STORED" json:"status"`
	RefOrderNo   string          `gorm:"size:100" json:"ref_order_no"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// per-unit weight of the pallet, zero when the pallet is empty
func (inv Inventory) UnitWeight() decimal.Decimal {
	if inv.Qty.IsZero() {
		return decimal.Zero
	}
	return inv.Weight.Div(inv.Qty)
}

// RemainQty is what can still be reserved by new release orders.
func (inv Inventory) RemainQty() decimal.Decimal {
	return inv.Qty.Sub(inv.LockedQty)
}

type NewInventory struct {
	BizplaceId  int             `json:"bizplace_id" binding:"required"`
	ProductId   int             `json:"product_id" binding:"required"`
	WarehouseId int             `json:"warehouse_id" binding:"required"`
	LocationId  int             `json:"location_id"`
	PalletId    string          `json:"pallet_id" binding:"required"`
	BatchId     string          `json:"batch_id"`
	PackingType string          `json:"packing_type"`
	Qty         decimal.Decimal `json:"qty"`
	Weight      decimal.Decimal `json:"weight"`
	RefOrderNo  string          `json:"ref_order_no"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewInventory) validate(ctx context.Context, domainId string, id int) error {
	// pallet id
	if err := utils.ValidateUnique[Inventory](ctx, domainId, "pallet_id", input.PalletId, id); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Bizplace](ctx, domainId, input.BizplaceId); err != nil {
		return errors.New("bizplace not found")
	}
	if err := utils.ValidateResourceId[Product](ctx, domainId, input.ProductId); err != nil {
		return errors.New("product not found")
	}
	if err := utils.ValidateResourceId[Warehouse](ctx, domainId, input.WarehouseId); err != nil {
		return errors.New("warehouse not found")
	}
	if input.LocationId > 0 {
		if err := utils.ValidateResourceId[Location](ctx, domainId, input.LocationId); err != nil {
			return errors.New("location not found")
		}
	}
	if input.Qty.IsNegative() || input.Weight.IsNegative() {
		return errors.New("qty and weight cannot be negative")
	}
	return nil
}

func CreateInventory(ctx context.Context, input *NewInventory) (*Inventory, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	if err := input.validate(ctx, domainId, 0); err != nil {
		return nil, err
	}

	inventory := Inventory{
		DomainId:    domainId,
		BizplaceId:  input.BizplaceId,
		ProductId:   input.ProductId,
		WarehouseId: input.WarehouseId,
		LocationId:  input.LocationId,
		PalletId:    input.PalletId,
		BatchId:     input.BatchId,
		PackingType: input.PackingType,
		Qty:         input.Qty,
		Weight:      input.Weight,
		Status:      InventoryStatusStored,
		RefOrderNo:  input.RefOrderNo,
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&inventory).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// opening history row
	history := InventoryHistory{
		DomainId:        domainId,
		InventoryId:     inventory.ID,
		PalletId:        inventory.PalletId,
		BatchId:         inventory.BatchId,
		ProductId:       inventory.ProductId,
		WarehouseId:     inventory.WarehouseId,
		LocationId:      inventory.LocationId,
		TransactionType: InventoryTransactionTypePutaway,
		Qty:             inventory.Qty,
		OpeningQty:      decimal.Zero,
		Weight:          inventory.Weight,
		OpeningWeight:   decimal.Zero,
		Status:          inventory.Status,
		RefOrderNo:      inventory.RefOrderNo,
	}
	if err := tx.WithContext(ctx).Create(&history).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &inventory, nil
}

func GetInventory(ctx context.Context, id int) (*Inventory, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}
	return utils.FetchModel[Inventory](ctx, domainId, id)
}

func GetInventoryByPalletId(ctx context.Context, palletId string) (*Inventory, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var inventory Inventory
	if err := db.WithContext(ctx).
		Where("domain_id = ? AND pallet_id = ?", domainId, palletId).
		First(&inventory).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &inventory, nil
}

type InventoryFilter struct {
	WarehouseId *int    `json:"warehouse_id"`
	BizplaceId  *int    `json:"bizplace_id"`
	ProductId   *int    `json:"product_id"`
	BatchId     *string `json:"batch_id"`
	PackingType *string `json:"packing_type"`
	OnlyRemain  *bool   `json:"only_remain"`
}

func ListInventory(ctx context.Context, filter *InventoryFilter) ([]*Inventory, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var results []*Inventory

	dbCtx := db.WithContext(ctx).
		Where("domain_id = ?", domainId).
		Where("status <> ?", InventoryStatusTerminated)
	if filter != nil {
		if filter.WarehouseId != nil && *filter.WarehouseId > 0 {
			dbCtx = dbCtx.Where("warehouse_id = ?", *filter.WarehouseId)
		}
		if filter.BizplaceId != nil && *filter.BizplaceId > 0 {
			dbCtx = dbCtx.Where("bizplace_id = ?", *filter.BizplaceId)
		}
		if filter.ProductId != nil && *filter.ProductId > 0 {
			dbCtx = dbCtx.Where("product_id = ?", *filter.ProductId)
		}
		if filter.BatchId != nil && len(*filter.BatchId) > 0 {
			dbCtx = dbCtx.Where("batch_id = ?", *filter.BatchId)
		}
		if filter.PackingType != nil && len(*filter.PackingType) > 0 {
			dbCtx = dbCtx.Where("packing_type = ?", *filter.PackingType)
		}
		if filter.OnlyRemain != nil && *filter.OnlyRemain {
			dbCtx = dbCtx.Where("qty > locked_qty")
		}
	}
	// db query
	err := dbCtx.Order("pallet_id").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func PaginateInventory(ctx context.Context, filter *InventoryFilter, limit int, after *string) ([]Edge[Inventory], *PageInfo, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, nil, errors.New("domain id is required")
	}
	if limit <= 0 {
		limit = config.SearchLimit
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&Inventory{}).
		Where("domain_id = ?", domainId).
		Where("status <> ?", InventoryStatusTerminated)
	if filter != nil {
		if filter.WarehouseId != nil && *filter.WarehouseId > 0 {
			dbCtx = dbCtx.Where("warehouse_id = ?", *filter.WarehouseId)
		}
		if filter.BizplaceId != nil && *filter.BizplaceId > 0 {
			dbCtx = dbCtx.Where("bizplace_id = ?", *filter.BizplaceId)
		}
		if filter.ProductId != nil && *filter.ProductId > 0 {
			dbCtx = dbCtx.Where("product_id = ?", *filter.ProductId)
		}
	}
	return FetchPagePureCursor[Inventory](dbCtx, limit, after, "pallet_id", ">")
}

// qty still picked against the pallet for the given release order
// (sum of picking transactions, stored negative in history)
func GetPickedQty(tx *gorm.DB, ctx context.Context, domainId string, releaseGoodName string, palletId string) (decimal.Decimal, error) {
	var picked *decimal.Decimal
	if err := tx.WithContext(ctx).Model(&InventoryHistory{}).
		Where("domain_id = ? AND ref_order_no = ? AND pallet_id = ? AND transaction_type = ?",
			domainId, releaseGoodName, palletId, InventoryTransactionTypePicking).
		Select("COALESCE(SUM(ABS(qty)), 0)").
		Scan(&picked).Error; err != nil {
		return decimal.Zero, err
	}
	if picked == nil {
		return decimal.Zero, nil
	}
	return *picked, nil
}
