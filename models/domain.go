package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/utils"
)

type Domain struct {
	ID          uuid.UUID `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"index;size:100;not null" json:"name" binding:"required"`
	Subdomain   string    `gorm:"size:100;not null;unique" json:"subdomain" binding:"required"`
	Description string    `gorm:"type:text" json:"description"`
	Timezone    string    `gorm:"size:50" json:"timezone"`
	IsActive    *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewDomain struct {
	Name        string `json:"name" binding:"required"`
	Subdomain   string `json:"subdomain" binding:"required"`
	Description string `json:"description"`
	Timezone    string `json:"timezone"`
}

func CreateDomain(ctx context.Context, input *NewDomain) (*Domain, error) {

	db := config.GetDB()

	subdomain := strings.ToLower(strings.TrimSpace(input.Subdomain))

	var count int64
	if err := db.WithContext(ctx).Model(&Domain{}).
		Where("subdomain = ?", subdomain).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("duplicate subdomain")
	}

	domain := Domain{
		ID:          uuid.New(),
		Name:        input.Name,
		Subdomain:   subdomain,
		Description: input.Description,
		Timezone:    input.Timezone,
		IsActive:    utils.NewTrue(),
	}

	// db action
	err := db.WithContext(ctx).Create(&domain).Error
	if err != nil {
		return nil, err
	}
	return &domain, nil
}

func UpdateDomain(ctx context.Context, id string, input *NewDomain) (*Domain, error) {

	db := config.GetDB()

	var domain Domain
	if err := db.WithContext(ctx).Where("id = ?", id).First(&domain).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}

	// db action
	err := db.WithContext(ctx).Model(&domain).Updates(map[string]interface{}{
		"Name":        input.Name,
		"Description": input.Description,
		"Timezone":    input.Timezone,
	}).Error
	if err != nil {
		return nil, err
	}

	return &domain, nil
}

func GetDomainById(ctx context.Context, id string) (*Domain, error) {
	var domain Domain

	// find in redis
	exists, err := config.GetRedisObject("Domain:"+id, &domain)
	if err != nil {
		return nil, err
	}
	if !exists {
		db := config.GetDB()
		if err := db.WithContext(ctx).Where("id = ?", id).First(&domain).Error; err != nil {
			return nil, utils.ErrorRecordNotFound
		}
		if err := config.SetRedisObject("Domain:"+id, &domain, 0); err != nil {
			return nil, err
		}
	}
	return &domain, nil
}

func GetDomainBySubdomain(ctx context.Context, subdomain string) (*Domain, error) {
	db := config.GetDB()
	var domain Domain
	if err := db.WithContext(ctx).
		Where("subdomain = ?", strings.ToLower(subdomain)).First(&domain).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &domain, nil
}

func ListDomain(ctx context.Context, name *string) ([]*Domain, error) {
	db := config.GetDB()
	var results []*Domain

	dbCtx := db.WithContext(ctx)
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
