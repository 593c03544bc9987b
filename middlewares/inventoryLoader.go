package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/warehouse_backend/models"
	"gorm.io/gorm"
)

type inventoryReader struct {
	db *gorm.DB
}

func (r *inventoryReader) getInventories(ctx context.Context, ids []int) []*dataloader.Result[*models.Inventory] {
	var results []models.Inventory
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Inventory](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetInventory(ctx context.Context, id int) (*models.Inventory, error) {
	loaders := For(ctx)
	return loaders.inventoryLoader.Load(ctx, id)()
}
