package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/warehouse_backend/models"
	"gorm.io/gorm"
)

type orderInventoryReader struct {
	db *gorm.DB
}

func (r *orderInventoryReader) GetOrderInventories(ctx context.Context, Ids []int) []*dataloader.Result[[]*models.OrderInventory] {
	var results []models.OrderInventory
	err := r.db.WithContext(ctx).Where("release_good_id IN ?", Ids).Find(&results).Error
	if err != nil {
		return handleError[[]*models.OrderInventory](len(Ids), err)
	}

	return generateLoaderArrayResults(results, Ids)
}

func GetOrderInventories(ctx context.Context, releaseGoodId int) ([]*models.OrderInventory, error) {
	loaders := For(ctx)
	return loaders.orderInventoryLoader.Load(ctx, releaseGoodId)()
}
