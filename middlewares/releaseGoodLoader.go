package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/warehouse_backend/models"
	"gorm.io/gorm"
)

type releaseGoodReader struct {
	db *gorm.DB
}

func (r *releaseGoodReader) getReleaseGoods(ctx context.Context, ids []int) []*dataloader.Result[*models.ReleaseGood] {
	var results []models.ReleaseGood
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.ReleaseGood](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetReleaseGood(ctx context.Context, id int) (*models.ReleaseGood, error) {
	loaders := For(ctx)
	return loaders.releaseGoodLoader.Load(ctx, id)()
}
