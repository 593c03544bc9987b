package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/warehouse_backend/models"
	"gorm.io/gorm"
)

type locationReader struct {
	db *gorm.DB
}

func (r *locationReader) getLocations(ctx context.Context, ids []int) []*dataloader.Result[*models.Location] {
	var results []models.Location
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Location](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetLocation(ctx context.Context, id int) (*models.Location, error) {
	loaders := For(ctx)
	return loaders.locationLoader.Load(ctx, id)()
}
