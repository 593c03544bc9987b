package middlewares

import (
	"context"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/models"
	"gorm.io/gorm"
)

type ctxKey string

const (
	loadersKey = ctxKey("dataloaders")
)

// Loaders wrap your data loaders to inject via middleware
type Loaders struct {
	bizplaceLoader  *dataloader.Loader[int, *models.Bizplace]
	productLoader   *dataloader.Loader[int, *models.Product]
	warehouseLoader *dataloader.Loader[int, *models.Warehouse]
	locationLoader  *dataloader.Loader[int, *models.Location]
	inventoryLoader *dataloader.Loader[int, *models.Inventory]

	releaseGoodLoader *dataloader.Loader[int, *models.ReleaseGood]
	worksheetLoader   *dataloader.Loader[int, *models.Worksheet]

	orderInventoryLoader       *dataloader.Loader[int, []*models.OrderInventory]
	worksheetDetailLoader      *dataloader.Loader[int, []*models.WorksheetDetail]
	arrivalNoticeProductLoader *dataloader.Loader[int, []*models.ArrivalNoticeProduct]
}

// NewLoaders instantiates data loaders for the middleware
func NewLoaders(conn *gorm.DB) *Loaders {
	// define the data loader
	bizplaceReader := &bizplaceReader{db: conn}
	productReader := &productReader{db: conn}
	warehouseReader := &warehouseReader{db: conn}
	locationReader := &locationReader{db: conn}
	inventoryReader := &inventoryReader{db: conn}
	releaseGoodReader := &releaseGoodReader{db: conn}
	worksheetReader := &worksheetReader{db: conn}
	orderInventoryReader := &orderInventoryReader{db: conn}
	worksheetDetailReader := &worksheetDetailReader{db: conn}
	arrivalNoticeProductReader := &arrivalNoticeProductReader{db: conn}

	return &Loaders{
		bizplaceLoader:  dataloader.NewBatchedLoader(bizplaceReader.getBizplaces, dataloader.WithWait[int, *models.Bizplace](time.Millisecond)),
		productLoader:   dataloader.NewBatchedLoader(productReader.getProducts, dataloader.WithWait[int, *models.Product](time.Millisecond)),
		warehouseLoader: dataloader.NewBatchedLoader(warehouseReader.getWarehouses, dataloader.WithWait[int, *models.Warehouse](time.Millisecond)),
		locationLoader:  dataloader.NewBatchedLoader(locationReader.getLocations, dataloader.WithWait[int, *models.Location](time.Millisecond)),
		inventoryLoader: dataloader.NewBatchedLoader(inventoryReader.getInventories, dataloader.WithWait[int, *models.Inventory](time.Millisecond)),

		releaseGoodLoader: dataloader.NewBatchedLoader(releaseGoodReader.getReleaseGoods, dataloader.WithWait[int, *models.ReleaseGood](time.Millisecond)),
		worksheetLoader:   dataloader.NewBatchedLoader(worksheetReader.getWorksheets, dataloader.WithWait[int, *models.Worksheet](time.Millisecond)),

		orderInventoryLoader:       dataloader.NewBatchedLoader(orderInventoryReader.GetOrderInventories, dataloader.WithWait[int, []*models.OrderInventory](time.Millisecond)),
		worksheetDetailLoader:      dataloader.NewBatchedLoader(worksheetDetailReader.GetWorksheetDetails, dataloader.WithWait[int, []*models.WorksheetDetail](time.Millisecond)),
		arrivalNoticeProductLoader: dataloader.NewBatchedLoader(arrivalNoticeProductReader.GetArrivalNoticeProducts, dataloader.WithWait[int, []*models.ArrivalNoticeProduct](time.Millisecond)),
	}
}

func LoaderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		loader := NewLoaders(config.GetDB())
		ctx := context.WithValue(c.Request.Context(), loadersKey, loader)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func For(ctx context.Context) *Loaders {
	return ctx.Value(loadersKey).(*Loaders)
}

func handleError[T any](itemsLength int, err error) []*dataloader.Result[T] {
	result := make([]*dataloader.Result[T], itemsLength)
	for i := 0; i < itemsLength; i++ {
		result[i] = &dataloader.Result[T]{Error: err}
	}
	return result
}

func generateLoaderResults[T models.Data](results []T, ids []int) []*dataloader.Result[*T] {
	// generate resultMap from results
	resultMap := make(map[int]T)
	var resultZero T
	resultMap[0] = resultZero.GetDefault(0).(T)
	for _, result := range results {
		resultMap[result.GetId()] = result
	}

	loaderResults := make([]*dataloader.Result[*T], 0, len(ids))
	for _, id := range ids {
		data := resultMap[id]
		if reflect.ValueOf(data).IsZero() {
			data = data.GetDefault(id).(T)
		}
		loaderResults = append(loaderResults, &dataloader.Result[*T]{Data: &data})
	}
	return loaderResults
}

func generateLoaderArrayResults[T models.RelatedData](results []T, referenceIds []int) (loaderResults []*dataloader.Result[[]*T]) {
	resultMap := make(map[int][]*T)
	for _, result := range results {
		// creating a new variable every turn, to avoid pointing to the adddress of result
		copy := result
		resultMap[result.GetReferenceId()] = append(resultMap[result.GetReferenceId()], &copy)
	}
	for _, id := range referenceIds {
		resultArray := resultMap[id]
		loaderResults = append(loaderResults, &dataloader.Result[[]*T]{Data: resultArray})
	}
	return loaderResults
}
