package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/utils"
)

// Bizplace is a customer company whose goods are stored in the warehouse.
type Bizplace struct {
	ID          int       `gorm:"primary_key" json:"id"`
	DomainId    string    `gorm:"index;not null" json:"domain_id"`
	Name        string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `gorm:"type:text" json:"address"`
	Phone       string    `gorm:"size:20" json:"phone"`
	Email       string    `gorm:"size:100" json:"email"`
	Status      string    `gorm:"size:20" json:"status"`
	IsActive    *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewBizplace struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Status      string `json:"status"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewBizplace) validate(ctx context.Context, domainId string, id int) error {
	// name
	if err := utils.ValidateUnique[Bizplace](ctx, domainId, "name", input.Name, id); err != nil {
		return err
	}
	// email
	if len(strings.TrimSpace(input.Email)) > 0 && !utils.IsValidEmail(input.Email) {
		return errors.New("invalid email address")
	}
	return nil
}

func CreateBizplace(ctx context.Context, input *NewBizplace) (*Bizplace, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	if err := input.validate(ctx, domainId, 0); err != nil {
		return nil, err
	}

	bizplace := Bizplace{
		DomainId:    domainId,
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		Status:      input.Status,
		IsActive:    utils.NewTrue(),
	}

	// db action
	db := config.GetDB()
	err := db.WithContext(ctx).Create(&bizplace).Error
	if err != nil {
		return nil, err
	}
	return &bizplace, nil
}

func UpdateBizplace(ctx context.Context, id int, input *NewBizplace) (*Bizplace, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	if err := input.validate(ctx, domainId, id); err != nil {
		return nil, err
	}

	bizplace, err := utils.FetchModel[Bizplace](ctx, domainId, id)
	if err != nil {
		return nil, err
	}

	// db action
	db := config.GetDB()
	err = db.WithContext(ctx).Model(&bizplace).Updates(map[string]interface{}{
		"Name":        input.Name,
		"Description": input.Description,
		"Address":     input.Address,
		"Phone":       input.Phone,
		"Email":       input.Email,
		"Status":      input.Status,
	}).Error
	if err != nil {
		return nil, err
	}

	return bizplace, nil
}

func DeleteBizplace(ctx context.Context, id int) (*Bizplace, error) {

	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	result, err := utils.FetchModel[Bizplace](ctx, domainId, id)
	if err != nil {
		return nil, err
	}

	// check if bizplace still owns pallets
	var count int64
	if err := db.WithContext(ctx).Model(&Inventory{}).
		Where("bizplace_id = ? AND status <> ?", id, InventoryStatusTerminated).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("bizplace has stored inventory")
	}

	// db action
	err = db.WithContext(ctx).Delete(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func GetBizplace(ctx context.Context, id int) (*Bizplace, error) {
	return GetResource[Bizplace](ctx, id)
}

func ListBizplace(ctx context.Context, name *string) ([]*Bizplace, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var results []*Bizplace

	dbCtx := db.WithContext(ctx).Where("domain_id = ?", domainId)
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

func ToggleActiveBizplace(ctx context.Context, id int, isActive bool) (*Bizplace, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}
	return ToggleActiveModel[Bizplace](ctx, domainId, id, isActive)
}
