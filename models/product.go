package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/utils"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int             `gorm:"primary_key" json:"id"`
	DomainId      string          `gorm:"index;not null" json:"domain_id"`
	BizplaceId    int             `gorm:"index;not null" json:"bizplace_id" binding:"required"`
	Name          string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Sku           string          `gorm:"size:100" json:"sku"`
	Description   string          `gorm:"type:text" json:"description"`
	Type          string          `gorm:"size:20" json:"type"`
	PackingTypes  string          `gorm:"size:255" json:"packing_types"`
	WeightUnit    string          `gorm:"size:10" json:"weight_unit"`
	UnitWeight    decimal.Decimal `gorm:"type:decimal(20, 4);default:0" json:"unit_weight"`
	ExpirationDay int             `gorm:"default:0" json:"expiration_day"`
	IsActive      *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProduct struct {
	BizplaceId    int             `json:"bizplace_id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Sku           string          `json:"sku"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	PackingTypes  string          `json:"packing_types"`
	WeightUnit    string          `json:"weight_unit"`
	UnitWeight    decimal.Decimal `json:"unit_weight"`
	ExpirationDay int             `json:"expiration_day"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewProduct) validate(ctx context.Context, domainId string, id int) error {
	// name
	if err := utils.ValidateUnique[Product](ctx, domainId, "name", input.Name, id); err != nil {
		return err
	}
	// check if bizplace is not owned by other domain
	if err := utils.ValidateResourceId[Bizplace](ctx, domainId, input.BizplaceId); err != nil {
		return errors.New("bizplace not found")
	}
	// sku
	if len(strings.TrimSpace(input.Sku)) > 0 {
		if err := utils.ValidateUnique[Product](ctx, domainId, "sku", input.Sku, id); err != nil {
			return err
		}
	}
	return nil
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	if err := input.validate(ctx, domainId, 0); err != nil {
		return nil, err
	}

	product := Product{
		DomainId:      domainId,
		BizplaceId:    input.BizplaceId,
		Name:          input.Name,
		Sku:           input.Sku,
		Description:   input.Description,
		Type:          input.Type,
		PackingTypes:  input.PackingTypes,
		WeightUnit:    input.WeightUnit,
		UnitWeight:    input.UnitWeight,
		ExpirationDay: input.ExpirationDay,
		IsActive:      utils.NewTrue(),
	}

	// db action
	db := config.GetDB()
	err := db.WithContext(ctx).Create(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(ctx context.Context, id int, input *NewProduct) (*Product, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	if err := input.validate(ctx, domainId, id); err != nil {
		return nil, err
	}

	product, err := utils.FetchModel[Product](ctx, domainId, id)
	if err != nil {
		return nil, err
	}

	// db action
	db := config.GetDB()
	err = db.WithContext(ctx).Model(&product).Updates(map[string]interface{}{
		"BizplaceId":    input.BizplaceId,
		"Name":          input.Name,
		"Sku":           input.Sku,
		"Description":   input.Description,
		"Type":          input.Type,
		"PackingTypes":  input.PackingTypes,
		"WeightUnit":    input.WeightUnit,
		"UnitWeight":    input.UnitWeight,
		"ExpirationDay": input.ExpirationDay,
	}).Error
	if err != nil {
		return nil, err
	}

	// clear cache
	if err := utils.RemoveRedis[Product](id, domainId); err != nil {
		return nil, err
	}

	return product, nil
}

func DeleteProduct(ctx context.Context, id int) (*Product, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	result, err := utils.FetchModel[Product](ctx, domainId, id)
	if err != nil {
		return nil, err
	}

	// check if product still has pallets
	var count int64
	if err := db.WithContext(ctx).Model(&Inventory{}).
		Where("product_id = ? AND status <> ?", id, InventoryStatusTerminated).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("product has stored inventory")
	}

	// db action
	err = db.WithContext(ctx).Delete(&result).Error
	if err != nil {
		return nil, err
	}

	// clear cache
	if err := utils.RemoveRedis[Product](id, domainId); err != nil {
		return nil, err
	}
	return result, nil
}

func GetProduct(ctx context.Context, id int) (*Product, error) {
	return GetResource[Product](ctx, id)
}

func ListProduct(ctx context.Context, bizplaceId *int, name *string) ([]*Product, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var results []*Product

	dbCtx := db.WithContext(ctx).Where("domain_id = ?", domainId)
	if bizplaceId != nil && *bizplaceId > 0 {
		dbCtx = dbCtx.Where("bizplace_id = ?", *bizplaceId)
	}
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ? OR sku LIKE ?", "%"+*name+"%", "%"+*name+"%")
	}
	// db query
	err := dbCtx.Order("name").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func ToggleActiveProduct(ctx context.Context, id int, isActive bool) (*Product, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}
	return ToggleActiveModel[Product](ctx, domainId, id, isActive)
}
