package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/warehouse_backend/models"
	"gorm.io/gorm"
)

type bizplaceReader struct {
	db *gorm.DB
}

func (r *bizplaceReader) getBizplaces(ctx context.Context, ids []int) []*dataloader.Result[*models.Bizplace] {
	var results []models.Bizplace
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Bizplace](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetBizplace(ctx context.Context, id int) (*models.Bizplace, error) {
	loaders := For(ctx)
	return loaders.bizplaceLoader.Load(ctx, id)()
}
