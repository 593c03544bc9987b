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

// InventoryHistory is the append-only movement ledger of a pallet.
// Qty is the signed delta of the transaction (picking rows are negative);
// OpeningQty/OpeningWeight snapshot the pallet before the transaction.
type InventoryHistory struct {
	ID              int                      `gorm:"primary_key" json:"id"`
	DomainId        string                   `gorm:"index;not null" json:"domain_id"`
	InventoryId     int                      `gorm:"index;not null" json:"inventory_id"`
	PalletId        string                   `gorm:"size:100;index;not null" json:"pallet_id"`
	BatchId         string                   `gorm:"size:100" json:"batch_id"`
	ProductId       int                      `gorm:"index;not null" json:"product_id"`
	WarehouseId     int                      `gorm:"index;not null" json:"warehouse_id"`
	LocationId      int                      `gorm:"index" json:"location_id"`
	TransactionType InventoryTransactionType `gorm:"type:enum('UNLOADING', 'PUTAWAY', 'PICKING', 'LOADING', 'ADJUSTMENT', 'TERMINATED');not null" json:"transaction_type"`
	Qty             decimal.Decimal          `gorm:"type:decimal(20, 4);default:0" json:"qty"`
	OpeningQty      decimal.Decimal          `gorm:"type:decimal(20, 4);default:0" json:"opening_qty"`
	Weight          decimal.Decimal          `gorm:"type:decimal(20, 4);default:0" json:"weight"`
	OpeningWeight   decimal.Decimal          `gorm:"type:decimal(20, 4);default:0" json:"opening_weight"`
	Status          InventoryStatus          `gorm:"type:enum('UNLOADED', 'STORED', 'TERMINATED');default:STORED" json:"status"`
	RefOrderNo      string                   `gorm:"size:100;index" json:"ref_order_no"`
	CreatedBy       string                   `gorm:"size:100" json:"created_by"`
	CreatedAt       time.Time                `gorm:"autoCreateTime" json:"created_at"`
}

// write one movement row inside the caller's transaction
func AppendInventoryHistory(tx *gorm.DB, ctx context.Context, inventory *Inventory, transactionType InventoryTransactionType, qtyDelta decimal.Decimal, weightDelta decimal.Decimal, openingQty decimal.Decimal, openingWeight decimal.Decimal, refOrderNo string) error {
	createdBy, _ := utils.GetUsernameFromContext(ctx)
	history := InventoryHistory{
		DomainId:        inventory.DomainId,
		InventoryId:     inventory.ID,
		PalletId:        inventory.PalletId,
		BatchId:         inventory.BatchId,
		ProductId:       inventory.ProductId,
		WarehouseId:     inventory.WarehouseId,
		LocationId:      inventory.LocationId,
		TransactionType: transactionType,
		Qty:             qtyDelta,
		OpeningQty:      openingQty,
		Weight:          weightDelta,
		OpeningWeight:   openingWeight,
		Status:          inventory.Status,
		RefOrderNo:      refOrderNo,
		CreatedBy:       createdBy,
	}
	return tx.WithContext(ctx).Create(&history).Error
}

type InventoryHistoryFilter struct {
	PalletId        *string                   `json:"pallet_id"`
	ProductId       *int                      `json:"product_id"`
	RefOrderNo      *string                   `json:"ref_order_no"`
	TransactionType *InventoryTransactionType `json:"transaction_type"`
}

func ListInventoryHistory(ctx context.Context, filter *InventoryHistoryFilter) ([]*InventoryHistory, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var results []*InventoryHistory

	dbCtx := db.WithContext(ctx).Where("domain_id = ?", domainId)
	if filter != nil {
		if filter.PalletId != nil && len(*filter.PalletId) > 0 {
			dbCtx = dbCtx.Where("pallet_id = ?", *filter.PalletId)
		}
		if filter.ProductId != nil && *filter.ProductId > 0 {
			dbCtx = dbCtx.Where("product_id = ?", *filter.ProductId)
		}
		if filter.RefOrderNo != nil && len(*filter.RefOrderNo) > 0 {
			dbCtx = dbCtx.Where("ref_order_no = ?", *filter.RefOrderNo)
		}
		if filter.TransactionType != nil {
			dbCtx = dbCtx.Where("transaction_type = ?", *filter.TransactionType)
		}
	}
	// db query
	err := dbCtx.Order("id").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func PaginateInventoryHistory(ctx context.Context, filter *InventoryHistoryFilter, limit int, after *string) ([]Edge[InventoryHistory], *PageInfo, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, nil, errors.New("domain id is required")
	}
	if limit <= 0 {
		limit = config.SearchLimit
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&InventoryHistory{}).Where("domain_id = ?", domainId)
	if filter != nil && filter.PalletId != nil && len(*filter.PalletId) > 0 {
		dbCtx = dbCtx.Where("pallet_id = ?", *filter.PalletId)
	}
	return FetchPageCompositeCursor[InventoryHistory](dbCtx, limit, after, "created_at", "<")
}
