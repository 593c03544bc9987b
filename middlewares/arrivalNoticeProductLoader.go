package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/warehouse_backend/models"
	"gorm.io/gorm"
)

type arrivalNoticeProductReader struct {
	db *gorm.DB
}

func (r *arrivalNoticeProductReader) GetArrivalNoticeProducts(ctx context.Context, Ids []int) []*dataloader.Result[[]*models.ArrivalNoticeProduct] {
	var results []models.ArrivalNoticeProduct
	err := r.db.WithContext(ctx).Where("arrival_notice_id IN ?", Ids).Find(&results).Error
	if err != nil {
		return handleError[[]*models.ArrivalNoticeProduct](len(Ids), err)
	}

	return generateLoaderArrayResults(results, Ids)
}

func GetArrivalNoticeProducts(ctx context.Context, arrivalNoticeId int) ([]*models.ArrivalNoticeProduct, error) {
	loaders := For(ctx)
	return loaders.arrivalNoticeProductLoader.Load(ctx, arrivalNoticeId)()
}
