package models

import (
	"context"
	"errors"
	"time"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/utils"
)

// Location is a storage slot inside a warehouse (zone/row/column addressing).
type Location struct {
	ID          int          `gorm:"primary_key" json:"id"`
	DomainId    string       `gorm:"index;not null" json:"domain_id"`
	WarehouseId int          `gorm:"index;not null" json:"warehouse_id" binding:"required"`
	Name        string       `gorm:"size:100;not null" json:"name" binding:"required"`
	Zone        string       `gorm:"size:20" json:"zone"`
	Row         string       `gorm:"size:20" json:"row"`
	Column      string       `gorm:"size:20" json:"column"`
	Type        LocationType `gorm:"type:enum('BUFFER', 'SHELF', 'FLOOR');default:SHELF" json:"type"`
	Status      string       `gorm:"size:20" json:"status"`
	IsActive    *bool        `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewLocation struct {
	WarehouseId int          `json:"warehouse_id" binding:"required"`
	Name        string       `json:"name" binding:"required"`
	Zone        string       `json:"zone"`
	Row         string       `json:"row"`
	Column      string       `json:"column"`
	Type        LocationType `json:"type"`
	Status      string       `json:"status"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewLocation) validate(ctx context.Context, domainId string, id int) error {
	// name
	if err := utils.ValidateUnique[Location](ctx, domainId, "name", input.Name, id); err != nil {
		return err
	}
	// check if warehouse is not owned by other domain
	if err := utils.ValidateResourceId[Warehouse](ctx, domainId, input.WarehouseId); err != nil {
		return errors.New("warehouse not found")
	}
	return nil
}

func CreateLocation(ctx context.Context, input *NewLocation) (*Location, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	if err := input.validate(ctx, domainId, 0); err != nil {
		return nil, err
	}

	location := Location{
		DomainId:    domainId,
		WarehouseId: input.WarehouseId,
		Name:        input.Name,
		Zone:        input.Zone,
		Row:         input.Row,
		Column:      input.Column,
		Type:        input.Type,
		Status:      input.Status,
		IsActive:    utils.NewTrue(),
	}

	// db action
	db := config.GetDB()
	err := db.WithContext(ctx).Create(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func UpdateLocation(ctx context.Context, id int, input *NewLocation) (*Location, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	if err := input.validate(ctx, domainId, id); err != nil {
		return nil, err
	}

	location, err := utils.FetchModel[Location](ctx, domainId, id)
	if err != nil {
		return nil, err
	}

	// db action
	db := config.GetDB()
	err = db.WithContext(ctx).Model(&location).Updates(map[string]interface{}{
		"WarehouseId": input.WarehouseId,
		"Name":        input.Name,
		"Zone":        input.Zone,
		"Row":         input.Row,
		"Column":      input.Column,
		"Type":        input.Type,
		"Status":      input.Status,
	}).Error
	if err != nil {
		return nil, err
	}

	return location, nil
}

func DeleteLocation(ctx context.Context, id int) (*Location, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	result, err := utils.FetchModel[Location](ctx, domainId, id)
	if err != nil {
		return nil, err
	}

	// check if location still holds pallets
	var count int64
	if err := db.WithContext(ctx).Model(&Inventory{}).
		Where("location_id = ? AND status <> ?", id, InventoryStatusTerminated).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("location has stored inventory")
	}

	// db action
	err = db.WithContext(ctx).Delete(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func GetLocation(ctx context.Context, id int) (*Location, error) {
	return GetResource[Location](ctx, id)
}

func ListLocation(ctx context.Context, warehouseId *int, name *string) ([]*Location, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var results []*Location

	dbCtx := db.WithContext(ctx).Where("domain_id = ?", domainId)
	if warehouseId != nil && *warehouseId > 0 {
		dbCtx = dbCtx.Where("warehouse_id = ?", *warehouseId)
	}
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	// db query
	err := dbCtx.Order("name").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func ToggleActiveLocation(ctx context.Context, id int, isActive bool) (*Location, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}
	return ToggleActiveModel[Location](ctx, domainId, id, isActive)
}
