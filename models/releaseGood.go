package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/utils"
	"github.com/shopspring/decimal"
)

// ReleaseGood is a release order: a customer's request to ship
// stored goods out of the warehouse.
type ReleaseGood struct {
	ID               int              `gorm:"primary_key" json:"id"`
	DomainId         string           `gorm:"index;not null" json:"domain_id"`
	BizplaceId       int              `gorm:"index;not null" json:"bizplace_id" binding:"required"`
	Name             string           `gorm:"size:100;not null;index" json:"name"`
	SequenceNo       decimal.Decimal  `gorm:"type:decimal(15);not null" json:"sequence_no"`
	RefNo            string           `gorm:"size:100" json:"ref_no"`
	Status           OrderStatus      `gorm:"type:enum('PENDING', 'READY_TO_PICK', 'PICKING', 'READY_TO_LOAD', 'LOADING', 'DONE', 'CANCELLED');default:PENDING" json:"status"`
	OwnTransport     *bool            `gorm:"not null;default:false" json:"own_transport"`
	ExportOption     *bool            `gorm:"not null;default:false" json:"export_option"`
	TruckNo          string           `gorm:"size:50" json:"truck_no"`
	ReleaseDate      time.Time        `json:"release_date"`
	Remark           string           `gorm:"type:text" json:"remark"`
	OrderInventories []OrderInventory `gorm:"foreignKey:ReleaseGoodId" json:"order_inventories"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewReleaseGood struct {
	BizplaceId   int                       `json:"bizplace_id" binding:"required"`
	RefNo        string                    `json:"ref_no"`
	OwnTransport *bool                     `json:"own_transport"`
	ExportOption *bool                     `json:"export_option"`
	TruckNo      string                    `json:"truck_no"`
	ReleaseDate  time.Time                 `json:"release_date"`
	Remark       string                    `json:"remark"`
	Lines        []ReleaseGoodProductInput `json:"lines"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewReleaseGood) validate(ctx context.Context, domainId string, id int) error {
	// check if bizplace is not owned by other domain
	if err := utils.ValidateResourceId[Bizplace](ctx, domainId, input.BizplaceId); err != nil {
		return errors.New("bizplace not found")
	}
	for _, line := range input.Lines {
		if err := line.validate(); err != nil {
			return err
		}
	}
	return nil
}

func CreateReleaseGood(ctx context.Context, input *NewReleaseGood) (*ReleaseGood, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	if err := input.validate(ctx, domainId, 0); err != nil {
		return nil, err
	}

	lock, err := utils.DomainLock(ctx, domainId, "ReleaseGoodLock", "models", "CreateReleaseGood")
	if err != nil {
		return nil, err
	}
	defer func() { _ = lock.Release(ctx) }()

	ownTransport := input.OwnTransport
	if ownTransport == nil {
		ownTransport = utils.NewFalse()
	}
	exportOption := input.ExportOption
	if exportOption == nil {
		exportOption = utils.NewFalse()
	}

	releaseGood := ReleaseGood{
		DomainId:     domainId,
		BizplaceId:   input.BizplaceId,
		RefNo:        input.RefNo,
		Status:       OrderStatusPending,
		OwnTransport: ownTransport,
		ExportOption: exportOption,
		TruckNo:      input.TruckNo,
		ReleaseDate:  input.ReleaseDate,
		Remark:       input.Remark,
	}

	db := config.GetDB()
	tx := db.Begin()
	seqNo, err := utils.GetSequence[ReleaseGood](ctx, domainId)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	prefix, err := getOrderPrefix(ctx, domainId, "Release Good")
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	releaseGood.SequenceNo = decimal.NewFromInt(seqNo)
	releaseGood.Name = prefix + fmt.Sprint(seqNo)

	err = tx.WithContext(ctx).Create(&releaseGood).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// reserve inventory for the initial lines
	for i := range input.Lines {
		line, err := addNewOrderInventory(tx, ctx, &releaseGood, &input.Lines[i], nil)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		releaseGood.OrderInventories = append(releaseGood.OrderInventories, *line)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &releaseGood, nil
}

func GetReleaseGood(ctx context.Context, id int) (*ReleaseGood, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}
	return utils.FetchModel[ReleaseGood](ctx, domainId, id, "OrderInventories")
}

func GetReleaseGoodByName(ctx context.Context, name string) (*ReleaseGood, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var releaseGood ReleaseGood
	if err := db.WithContext(ctx).Preload("OrderInventories").
		Where("domain_id = ? AND name = ?", domainId, name).
		First(&releaseGood).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &releaseGood, nil
}

type ReleaseGoodFilter struct {
	BizplaceId *int         `json:"bizplace_id"`
	Status     *OrderStatus `json:"status"`
	Name       *string      `json:"name"`
}

func PaginateReleaseGood(ctx context.Context, filter *ReleaseGoodFilter, limit int, after *string) ([]Edge[ReleaseGood], *PageInfo, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, nil, errors.New("domain id is required")
	}
	if limit <= 0 {
		limit = config.SearchLimit
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&ReleaseGood{}).
		Preload("OrderInventories").
		Where("release_goods.domain_id = ?", domainId)
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
	return FetchPageCompositeCursor[ReleaseGood](dbCtx, limit, after, "created_at", "<")
}

// CancelReleaseGood releases every reservation of the order and
// cancels its worksheets.
func CancelReleaseGood(ctx context.Context, id int) (*ReleaseGood, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	lock, err := utils.DomainLock(ctx, domainId, "ReleaseGoodLock", "models", "CancelReleaseGood")
	if err != nil {
		return nil, err
	}
	defer func() { _ = lock.Release(ctx) }()

	releaseGood, err := utils.FetchModel[ReleaseGood](ctx, domainId, id, "OrderInventories")
	if err != nil {
		return nil, err
	}
	if releaseGood.Status == OrderStatusDone {
		return nil, errors.New("release order is already done")
	}
	if releaseGood.Status == OrderStatusCancelled {
		return nil, errors.New("release order is already cancelled")
	}

	db := config.GetDB()
	tx := db.Begin()

	for i := range releaseGood.OrderInventories {
		oi := &releaseGood.OrderInventories[i]
		if oi.IsCancelled() {
			continue
		}
		if err := cancelOrderInventory(tx, ctx, releaseGood, oi); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := cancelReleaseGoodWorksheets(tx, ctx, domainId, releaseGood.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.WithContext(ctx).Model(&releaseGood).
		Update("status", OrderStatusCancelled).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return releaseGood, nil
}

// DeleteReleaseGood removes a release order that has not started picking.
func DeleteReleaseGood(ctx context.Context, id int) (*ReleaseGood, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	lock, err := utils.DomainLock(ctx, domainId, "ReleaseGoodLock", "models", "DeleteReleaseGood")
	if err != nil {
		return nil, err
	}
	defer func() { _ = lock.Release(ctx) }()

	releaseGood, err := utils.FetchModel[ReleaseGood](ctx, domainId, id, "OrderInventories")
	if err != nil {
		return nil, err
	}
	if releaseGood.Status != OrderStatusPending && releaseGood.Status != OrderStatusCancelled {
		return nil, errors.New("only pending or cancelled release orders can be deleted")
	}

	db := config.GetDB()
	tx := db.Begin()

	// release remaining reservations of active lines
	for i := range releaseGood.OrderInventories {
		oi := &releaseGood.OrderInventories[i]
		if oi.IsCancelled() {
			continue
		}
		if err := cancelOrderInventory(tx, ctx, releaseGood, oi); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.WithContext(ctx).
		Where("release_good_id = ?", releaseGood.ID).
		Delete(&OrderInventory{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.WithContext(ctx).Delete(&releaseGood).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return releaseGood, nil
}
