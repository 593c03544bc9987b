package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ArrivalNotice is an inbound order: a customer's notice that goods
// are arriving to be stored in the warehouse.
type ArrivalNotice struct {
	ID          int                    `gorm:"primary_key" json:"id"`
	DomainId    string                 `gorm:"index;not null" json:"domain_id"`
	BizplaceId  int                    `gorm:"index;not null" json:"bizplace_id" binding:"required"`
	Name        string                 `gorm:"size:100;not null;index" json:"name"`
	SequenceNo  decimal.Decimal        `gorm:"type:decimal(15);not null" json:"sequence_no"`
	RefNo       string                 `gorm:"size:100" json:"ref_no"`
	Status      OrderStatus            `gorm:"type:enum('PENDING', 'READY_TO_PICK', 'PICKING', 'READY_TO_LOAD', 'LOADING', 'DONE', 'CANCELLED');default:PENDING" json:"status"`
	ContainerNo string                 `gorm:"size:50" json:"container_no"`
	EtaDate     time.Time              `json:"eta_date"`
	Remark      string                 `gorm:"type:text" json:"remark"`
	Products    []ArrivalNoticeProduct `gorm:"foreignKey:ArrivalNoticeId" json:"products"`
	CreatedAt   time.Time              `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
}

type ArrivalNoticeProduct struct {
	ID              int             `gorm:"primary_key" json:"id"`
	DomainId        string          `gorm:"index;not null" json:"domain_id"`
	ArrivalNoticeId int             `gorm:"index;not null" json:"arrival_notice_id"`
	ProductId       int             `gorm:"index;not null" json:"product_id" binding:"required"`
	BatchId         string          `gorm:"size:100" json:"batch_id"`
	PackingType     string          `gorm:"size:50" json:"packing_type"`
	PackQty         decimal.Decimal `gorm:"type:decimal(20, 4);default:0" json:"pack_qty"`
	Weight          decimal.Decimal `gorm:"type:decimal(20, 4);default:0" json:"weight"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewArrivalNotice struct {
	BizplaceId  int                       `json:"bizplace_id" binding:"required"`
	RefNo       string                    `json:"ref_no"`
	ContainerNo string                    `json:"container_no"`
	EtaDate     time.Time                 `json:"eta_date"`
	Remark      string                    `json:"remark"`
	Products    []NewArrivalNoticeProduct `json:"products"`
}

type NewArrivalNoticeProduct struct {
	ProductId   int             `json:"product_id" binding:"required"`
	BatchId     string          `json:"batch_id"`
	PackingType string          `json:"packing_type"`
	PackQty     decimal.Decimal `json:"pack_qty"`
	Weight      decimal.Decimal `json:"weight"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewArrivalNotice) validate(ctx context.Context, domainId string, id int) error {
	if err := utils.ValidateResourceId[Bizplace](ctx, domainId, input.BizplaceId); err != nil {
		return errors.New("bizplace not found")
	}
	if len(input.Products) == 0 {
		return errors.New("at least one product is required")
	}
	for _, p := range input.Products {
		if err := utils.ValidateResourceId[Product](ctx, domainId, p.ProductId); err != nil {
			return errors.New("product not found")
		}
		if p.PackQty.IsNegative() || p.PackQty.IsZero() {
			return errors.New("pack qty must be positive")
		}
	}
	return nil
}

func CreateArrivalNotice(ctx context.Context, input *NewArrivalNotice) (*ArrivalNotice, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	if err := input.validate(ctx, domainId, 0); err != nil {
		return nil, err
	}

	products := make([]ArrivalNoticeProduct, 0, len(input.Products))
	for _, p := range input.Products {
		products = append(products, ArrivalNoticeProduct{
			DomainId:    domainId,
			ProductId:   p.ProductId,
			BatchId:     p.BatchId,
			PackingType: p.PackingType,
			PackQty:     p.PackQty,
			Weight:      p.Weight,
		})
	}

	arrivalNotice := ArrivalNotice{
		DomainId:    domainId,
		BizplaceId:  input.BizplaceId,
		RefNo:       input.RefNo,
		Status:      OrderStatusPending,
		ContainerNo: input.ContainerNo,
		EtaDate:     input.EtaDate,
		Remark:      input.Remark,
		Products:    products,
	}

	db := config.GetDB()
	tx := db.Begin()
	seqNo, err := utils.GetSequence[ArrivalNotice](ctx, domainId)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	prefix, err := getOrderPrefix(ctx, domainId, "Arrival Notice")
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	arrivalNotice.SequenceNo = decimal.NewFromInt(seqNo)
	arrivalNotice.Name = prefix + fmt.Sprint(seqNo)

	err = tx.WithContext(ctx).Create(&arrivalNotice).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &arrivalNotice, nil
}

func GetArrivalNotice(ctx context.Context, id int) (*ArrivalNotice, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}
	return utils.FetchModel[ArrivalNotice](ctx, domainId, id, "Products")
}

type ArrivalNoticeFilter struct {
	BizplaceId *int         `json:"bizplace_id"`
	Status     *OrderStatus `json:"status"`
	Name       *string      `json:"name"`
}

func PaginateArrivalNotice(ctx context.Context, filter *ArrivalNoticeFilter, limit int, after *string) ([]Edge[ArrivalNotice], *PageInfo, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, nil, errors.New("domain id is required")
	}
	if limit <= 0 {
		limit = config.SearchLimit
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&ArrivalNotice{}).
		Preload("Products").
		Where("arrival_notices.domain_id = ?", domainId)
	if filter != nil {
		if filter.BizplaceId != nil && *filter.BizplaceId > 0 {
			dbCtx = dbCtx.Where("bizplace_id = ?", *filter.BizplaceId)
		}
		if filter.Status != nil {
			dbCtx = dbCtx.Where("status = ?", *filter.Status)
		}
		if filter.Name != nil && len(*filter.Name) > 0 {
			dbCtx = dbCtx.Where("name LIKE ?", "%"+*filter.Name+"%")
		}
	}
	return FetchPageCompositeCursor[ArrivalNotice](dbCtx, limit, after, "created_at", "<")
}

type ReceivedPalletInput struct {
	ProductId   int             `json:"product_id" binding:"required"`
	LocationId  int             `json:"location_id"`
	PalletId    string          `json:"pallet_id" binding:"required"`
	BatchId     string          `json:"batch_id"`
	PackingType string          `json:"packing_type"`
	Qty         decimal.Decimal `json:"qty"`
	Weight      decimal.Decimal `json:"weight"`
}

// ReceiveArrivalNotice books the arrived pallets into stock and closes
// the inbound order.
func ReceiveArrivalNotice(ctx context.Context, id int, warehouseId int, pallets []ReceivedPalletInput) (*ArrivalNotice, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	arrivalNotice, err := utils.FetchModel[ArrivalNotice](ctx, domainId, id, "Products")
	if err != nil {
		return nil, err
	}
	if arrivalNotice.Status == OrderStatusDone || arrivalNotice.Status == OrderStatusCancelled {
		return nil, errors.New("arrival notice is already closed")
	}
	if err := utils.ValidateResourceId[Warehouse](ctx, domainId, warehouseId); err != nil {
		return nil, errors.New("warehouse not found")
	}
	if len(pallets) == 0 {
		return nil, errors.New("at least one pallet is required")
	}

	db := config.GetDB()
	tx := db.Begin()

	for _, p := range pallets {
		if p.Qty.IsNegative() || p.Qty.IsZero() {
			tx.Rollback()
			return nil, errors.New("pallet qty must be positive")
		}

		// pallets without a location stay on the dock until putaway
		status := InventoryStatusStored
		if p.LocationId == 0 {
			status = InventoryStatusUnloaded
		}

		var existing Inventory
		err := tx.WithContext(ctx).
			Where("domain_id = ? AND pallet_id = ?", domainId, p.PalletId).
			Take(&existing).Error
		if err == nil {
			if existing.Status != InventoryStatusTerminated {
				tx.Rollback()
				return nil, fmt.Errorf("pallet %s is already in stock", p.PalletId)
			}
			if config.StrictPalletImmutability() {
				tx.Rollback()
				return nil, fmt.Errorf("pallet %s was shipped out and cannot be reused", p.PalletId)
			}
			// revive the terminated pallet id for the new stock
			if err := tx.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
				"BizplaceId":  arrivalNotice.BizplaceId,
				"ProductId":   p.ProductId,
				"WarehouseId": warehouseId,
				"LocationId":  p.LocationId,
				"BatchId":     p.BatchId,
				"PackingType": p.PackingType,
				"Qty":         p.Qty,
				"Weight":      p.Weight,
				"Status":      status,
				"RefOrderNo":  arrivalNotice.Name,
			}).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
			existing.Qty = p.Qty
			existing.Weight = p.Weight
			existing.Status = status
			if err := AppendInventoryHistory(tx, ctx, &existing, InventoryTransactionTypeUnloading,
				p.Qty, p.Weight, decimal.Zero, decimal.Zero, arrivalNotice.Name); err != nil {
				tx.Rollback()
				return nil, err
			}
			continue
		}
		if err != gorm.ErrRecordNotFound {
			tx.Rollback()
			return nil, err
		}

		inventory := Inventory{
			DomainId:    domainId,
			BizplaceId:  arrivalNotice.BizplaceId,
			ProductId:   p.ProductId,
			WarehouseId: warehouseId,
			LocationId:  p.LocationId,
			PalletId:    p.PalletId,
			BatchId:     p.BatchId,
			PackingType: p.PackingType,
			Qty:         p.Qty,
			Weight:      p.Weight,
			Status:      status,
			RefOrderNo:  arrivalNotice.Name,
		}
		if err := tx.WithContext(ctx).Create(&inventory).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := AppendInventoryHistory(tx, ctx, &inventory, InventoryTransactionTypeUnloading,
			p.Qty, p.Weight, decimal.Zero, decimal.Zero, arrivalNotice.Name); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.WithContext(ctx).Model(&arrivalNotice).
		Update("status", OrderStatusDone).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return arrivalNotice, nil
}
