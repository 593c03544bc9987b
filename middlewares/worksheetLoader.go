package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/warehouse_backend/models"
	"gorm.io/gorm"
)

type worksheetReader struct {
	db *gorm.DB
}

func (r *worksheetReader) getWorksheets(ctx context.Context, ids []int) []*dataloader.Result[*models.Worksheet] {
	var results []models.Worksheet
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Worksheet](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetWorksheet(ctx context.Context, id int) (*models.Worksheet, error) {
	loaders := For(ctx)
	return loaders.worksheetLoader.Load(ctx, id)()
}
