package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/warehouse_backend/models"
	"gorm.io/gorm"
)

type worksheetDetailReader struct {
	db *gorm.DB
}

func (r *worksheetDetailReader) GetWorksheetDetails(ctx context.Context, Ids []int) []*dataloader.Result[[]*models.WorksheetDetail] {
	var results []models.WorksheetDetail
	err := r.db.WithContext(ctx).Where("worksheet_id IN ?", Ids).Find(&results).Error
	if err != nil {
		return handleError[[]*models.WorksheetDetail](len(Ids), err)
	}

	return generateLoaderArrayResults(results, Ids)
}

func GetWorksheetDetails(ctx context.Context, worksheetId int) ([]*models.WorksheetDetail, error) {
	loaders := For(ctx)
	return loaders.worksheetDetailLoader.Load(ctx, worksheetId)()
}
