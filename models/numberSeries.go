package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/utils"
)

// NumberSeries configures the document number prefix per module
// (e.g. "RG-" for release orders, "AN-" for arrival notices).
type NumberSeries struct {
	ID         int       `gorm:"primary_key" json:"id"`
	DomainId   string    `gorm:"index;not null" json:"domain_id"`
	ModuleName string    `gorm:"size:100;not null" json:"module_name" binding:"required"`
	Prefix     string    `gorm:"size:10;not null" json:"prefix"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewNumberSeries struct {
	ModuleName string `json:"module_name" binding:"required"`
	Prefix     string `json:"prefix" binding:"required"`
}

// fallback prefixes when the domain has not configured a series
var defaultOrderPrefixes = map[string]string{
	"Release Good":   "RG-",
	"Arrival Notice": "AN-",
	"Worksheet":      "WS-",
}

// get order number prefix for module, redis or db
func getOrderPrefix(ctx context.Context, domainId string, moduleName string) (string, error) {
	orderPrefixes := make(map[string]string, 0) // moduleName => prefix
	redisKey := "orderPrefixMap:" + domainId
	exists, err := config.GetRedisObject(redisKey, &orderPrefixes)
	if err != nil {
		return "", err
	}
	if !exists {
		// retrieves moduleName:prefix map of the domain from db
		db := config.GetDB()
		var series []*NumberSeries
		if err := db.WithContext(ctx).Model(&NumberSeries{}).
			Where("domain_id = ?", domainId).Find(&series).Error; err != nil {
			return "", err
		}

		for _, s := range series {
			orderPrefixes[s.ModuleName] = s.Prefix
		}
		if err := config.SetRedisObject(redisKey, &orderPrefixes, 0); err != nil {
			return "", err
		}
	}

	prefix, ok := orderPrefixes[moduleName]
	if !ok || prefix == "" {
		return defaultOrderPrefixes[moduleName], nil
	}
	return prefix, nil
}

func UpsertNumberSeries(ctx context.Context, input *NewNumberSeries) (*NumberSeries, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var series NumberSeries
	err := db.WithContext(ctx).
		Where("domain_id = ? AND module_name = ?", domainId, input.ModuleName).
		First(&series).Error
	if err != nil {
		series = NumberSeries{
			DomainId:   domainId,
			ModuleName: input.ModuleName,
			Prefix:     input.Prefix,
		}
		if err := db.WithContext(ctx).Create(&series).Error; err != nil {
			return nil, err
		}
	} else {
		if err := db.WithContext(ctx).Model(&series).
			UpdateColumn("prefix", input.Prefix).Error; err != nil {
			return nil, err
		}
	}

	// clear cached prefix map
	if err := config.RemoveRedisKey("orderPrefixMap:" + fmt.Sprint(domainId)); err != nil {
		return nil, err
	}
	return &series, nil
}

func ListNumberSeries(ctx context.Context) ([]*NumberSeries, error) {
	domainId, ok := utils.GetDomainIdFromContext(ctx)
	if !ok || domainId == "" {
		return nil, errors.New("domain id is required")
	}

	db := config.GetDB()
	var results []*NumberSeries
	if err := db.WithContext(ctx).
		Where("domain_id = ?", domainId).Order("module_name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
