package models

import (
	"context"
	"errors"

	"time"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/utils"
	"github.com/shopspring/decimal"
)

// OrderInventory is one line of a release order: a quantity of a product,
// usually reserved against a specific pallet. A line without an inventory is
// a product-level request that reserves nothing yet.
type OrderInventory struct {
	ID            int                  `gorm:"primary_key" json:"id"`
	DomainId      string               `gorm:"index;not null" json:"domain_id"`
	ReleaseGoodId int                  `gorm:"index;not null" json:"release_good_id"`
	Name          string               `gorm:"size:100;not null" json:"name"`
	BizplaceId    int                  `gorm:"index;not null" json:"bizplace_id"`
	ProductId     int                  `gorm:"index;not null" json:"product_id" binding:"required"`
	InventoryId   *int                 `gorm:"index" json:"inventory_id"`
	BatchId       string               `gorm:"size:100" json:"batch_id"`
	PackingType   string               `gorm:"size:50" json:"packing_type"`
	ReleaseQty    decimal.Decimal      `gorm:"type:decimal(20, 4);default:0" json:"release_qty"`
	ReleaseWeight decimal.Decimal      `gorm:"type:decimal(20, 4);default:0" json:"release_weight"`
	Status        OrderInventoryStatus `gorm:"type:enum('PENDING', 'READY_TO_PICK', 'PICKING', 'PICKED', 'LOADED', 'CANCELLED');default:PENDING" json:"status"`
	CrossDocking  *bool                `gorm:"not null;default:false" json:"cross_docking"`
	CreatedAt     time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

func (oi OrderInventory) IsCancelled() bool {
	return oi.Status == OrderInventoryStatusCancelled
}

// lines of a release order, most recent first
func ListOrderInventory(ctx context.Context, releaseGoodId int, includeCancelled bool) ([]*OrderInventory, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var results []*OrderInventory

	dbCtx := db.WithContext(ctx).
		Where("domain_id = ? AND release_good_id = ?", domainId, releaseGoodId)
	if !includeCancelled {
		dbCtx = dbCtx.Where("status <> ?", OrderInventoryStatusCancelled)
	}
	// db query
	err := dbCtx.Order("id").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func GetOrderInventory(ctx context.Context, id int) (*OrderInventory, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}
	return utils.FetchModel[OrderInventory](ctx, domainId, id)
}
