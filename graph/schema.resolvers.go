package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.41

import (
	"context"
	"errors"

	"github.com/mmdatafocus/warehouse_backend/middlewares"
	"github.com/mmdatafocus/warehouse_backend/models"
	"github.com/mmdatafocus/warehouse_backend/utils"
	"github.com/mmdatafocus/warehouse_backend/workflow"
)

// Bizplace is the resolver for the bizplace field.
func (r *arrivalNoticeResolver) Bizplace(ctx context.Context, obj *models.ArrivalNotice) (*models.Bizplace, error) {
	return middlewares.GetBizplace(ctx, obj.BizplaceId)
}

// Products is the resolver for the products field.
func (r *arrivalNoticeResolver) Products(ctx context.Context, obj *models.ArrivalNotice) ([]*models.ArrivalNoticeProduct, error) {
	return middlewares.GetArrivalNoticeProducts(ctx, obj.ID)
}

// Product is the resolver for the product field.
func (r *arrivalNoticeProductResolver) Product(ctx context.Context, obj *models.ArrivalNoticeProduct) (*models.Product, error) {
	return middlewares.GetProduct(ctx, obj.ProductId)
}

// Product is the resolver for the product field.
func (r *inventoryResolver) Product(ctx context.Context, obj *models.Inventory) (*models.Product, error) {
	return middlewares.GetProduct(ctx, obj.ProductId)
}

// Warehouse is the resolver for the warehouse field.
func (r *inventoryResolver) Warehouse(ctx context.Context, obj *models.Inventory) (*models.Warehouse, error) {
	return middlewares.GetWarehouse(ctx, obj.WarehouseId)
}

// Location is the resolver for the location field.
func (r *inventoryResolver) Location(ctx context.Context, obj *models.Inventory) (*models.Location, error) {
	return middlewares.GetLocation(ctx, obj.LocationId)
}

// Bizplace is the resolver for the bizplace field.
func (r *inventoryResolver) Bizplace(ctx context.Context, obj *models.Inventory) (*models.Bizplace, error) {
	return middlewares.GetBizplace(ctx, obj.BizplaceId)
}

// Product is the resolver for the product field.
func (r *inventoryHistoryResolver) Product(ctx context.Context, obj *models.InventoryHistory) (*models.Product, error) {
	return middlewares.GetProduct(ctx, obj.ProductId)
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, username string, password string) (*models.LoginInfo, error) {
	return models.Login(ctx, username, password)
}

// Logout is the resolver for the logout field.
func (r *mutationResolver) Logout(ctx context.Context) (bool, error) {
	return models.Logout(ctx)
}

// ChangePassword is the resolver for the changePassword field.
func (r *mutationResolver) ChangePassword(ctx context.Context, oldPassword string, newPassword string) (*models.User, error) {
	return models.ChangePassword(ctx, oldPassword, newPassword)
}

// ClearRedisCache is the resolver for the clearRedisCache field.
func (r *mutationResolver) ClearRedisCache(ctx context.Context) (string, error) {
	return models.ClearRedisCache(ctx)
}

// CreateDomain is the resolver for the createDomain field.
func (r *mutationResolver) CreateDomain(ctx context.Context, input models.NewDomain) (*models.Domain, error) {
	return models.CreateDomain(ctx, &input)
}

// UpdateDomain is the resolver for the updateDomain field.
func (r *mutationResolver) UpdateDomain(ctx context.Context, id string, input models.NewDomain) (*models.Domain, error) {
	return models.UpdateDomain(ctx, id, &input)
}

// CreateUser is the resolver for the createUser field.
func (r *mutationResolver) CreateUser(ctx context.Context, input models.NewUser) (*models.User, error) {
	return models.CreateUser(ctx, &input)
}

// UpdateUser is the resolver for the updateUser field.
func (r *mutationResolver) UpdateUser(ctx context.Context, id int, input models.NewUser) (*models.User, error) {
	user := models.User{
		ID:       id,
		Username: input.Username,
		Name:     input.Name,
		Email:    utils.NilIfEmpty(input.Email),
		Phone:    input.Phone,
		Mobile:   input.Mobile,
		IsActive: input.IsActive,
		Role:     input.Role,
	}
	return user.UpdateUser(id)
}

// DeleteUser is the resolver for the deleteUser field.
func (r *mutationResolver) DeleteUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	return user.DeleteUser(id)
}

// CreateBizplace is the resolver for the createBizplace field.
func (r *mutationResolver) CreateBizplace(ctx context.Context, input models.NewBizplace) (*models.Bizplace, error) {
	return models.CreateBizplace(ctx, &input)
}

// UpdateBizplace is the resolver for the updateBizplace field.
func (r *mutationResolver) UpdateBizplace(ctx context.Context, id int, input models.NewBizplace) (*models.Bizplace, error) {
	return models.UpdateBizplace(ctx, id, &input)
}

// DeleteBizplace is the resolver for the deleteBizplace field.
func (r *mutationResolver) DeleteBizplace(ctx context.Context, id int) (*models.Bizplace, error) {
	return models.DeleteBizplace(ctx, id)
}

// ToggleActiveBizplace is the resolver for the toggleActiveBizplace field.
func (r *mutationResolver) ToggleActiveBizplace(ctx context.Context, id int, isActive bool) (*models.Bizplace, error) {
	return models.ToggleActiveBizplace(ctx, id, isActive)
}

// CreateWarehouse is the resolver for the createWarehouse field.
func (r *mutationResolver) CreateWarehouse(ctx context.Context, input models.NewWarehouse) (*models.Warehouse, error) {
	return models.CreateWarehouse(ctx, &input)
}

// UpdateWarehouse is the resolver for the updateWarehouse field.
func (r *mutationResolver) UpdateWarehouse(ctx context.Context, id int, input models.NewWarehouse) (*models.Warehouse, error) {
	return models.UpdateWarehouse(ctx, id, &input)
}

// DeleteWarehouse is the resolver for the deleteWarehouse field.
func (r *mutationResolver) DeleteWarehouse(ctx context.Context, id int) (*models.Warehouse, error) {
	return models.DeleteWarehouse(ctx, id)
}

// ToggleActiveWarehouse is the resolver for the toggleActiveWarehouse field.
func (r *mutationResolver) ToggleActiveWarehouse(ctx context.Context, id int, isActive bool) (*models.Warehouse, error) {
	return models.ToggleActiveWarehouse(ctx, id, isActive)
}

// CreateLocation is the resolver for the createLocation field.
func (r *mutationResolver) CreateLocation(ctx context.Context, input models.NewLocation) (*models.Location, error) {
	return models.CreateLocation(ctx, &input)
}

// UpdateLocation is the resolver for the updateLocation field.
func (r *mutationResolver) UpdateLocation(ctx context.Context, id int, input models.NewLocation) (*models.Location, error) {
	return models.UpdateLocation(ctx, id, &input)
}

// DeleteLocation is the resolver for the deleteLocation field.
func (r *mutationResolver) DeleteLocation(ctx context.Context, id int) (*models.Location, error) {
	return models.DeleteLocation(ctx, id)
}

// ToggleActiveLocation is the resolver for the toggleActiveLocation field.
func (r *mutationResolver) ToggleActiveLocation(ctx context.Context, id int, isActive bool) (*models.Location, error) {
	return models.ToggleActiveLocation(ctx, id, isActive)
}

// CreateProduct is the resolver for the createProduct field.
func (r *mutationResolver) CreateProduct(ctx context.Context, input models.NewProduct) (*models.Product, error) {
	return models.CreateProduct(ctx, &input)
}

// UpdateProduct is the resolver for the updateProduct field.
func (r *mutationResolver) UpdateProduct(ctx context.Context, id int, input models.NewProduct) (*models.Product, error) {
	return models.UpdateProduct(ctx, id, &input)
}

// DeleteProduct is the resolver for the deleteProduct field.
func (r *mutationResolver) DeleteProduct(ctx context.Context, id int) (*models.Product, error) {
	return models.DeleteProduct(ctx, id)
}

// ToggleActiveProduct is the resolver for the toggleActiveProduct field.
func (r *mutationResolver) ToggleActiveProduct(ctx context.Context, id int, isActive bool) (*models.Product, error) {
	return models.ToggleActiveProduct(ctx, id, isActive)
}

// CreateInventory is the resolver for the createInventory field.
func (r *mutationResolver) CreateInventory(ctx context.Context, input models.NewInventory) (*models.Inventory, error) {
	return models.CreateInventory(ctx, &input)
}

// CreateReleaseGood is the resolver for the createReleaseGood field.
func (r *mutationResolver) CreateReleaseGood(ctx context.Context, input models.NewReleaseGood) (*models.ReleaseGood, error) {
	return models.CreateReleaseGood(ctx, &input)
}

// AddReleaseGoodProducts is the resolver for the addReleaseGoodProducts field.
func (r *mutationResolver) AddReleaseGoodProducts(ctx context.Context, name string, orderInventories []models.ReleaseGoodProductInput, existingOrderInventories []models.ExistingOrderInventoryInput) (*models.ReleaseGood, error) {
	return models.AddReleaseGoodProducts(ctx, name, orderInventories, existingOrderInventories)
}

// CancelReleaseGood is the resolver for the cancelReleaseGood field.
func (r *mutationResolver) CancelReleaseGood(ctx context.Context, id int) (*models.ReleaseGood, error) {
	return models.CancelReleaseGood(ctx, id)
}

// DeleteReleaseGood is the resolver for the deleteReleaseGood field.
func (r *mutationResolver) DeleteReleaseGood(ctx context.Context, id int) (*models.ReleaseGood, error) {
	return models.DeleteReleaseGood(ctx, id)
}

// CreateArrivalNotice is the resolver for the createArrivalNotice field.
func (r *mutationResolver) CreateArrivalNotice(ctx context.Context, input models.NewArrivalNotice) (*models.ArrivalNotice, error) {
	return models.CreateArrivalNotice(ctx, &input)
}

// ReceiveArrivalNotice is the resolver for the receiveArrivalNotice field.
func (r *mutationResolver) ReceiveArrivalNotice(ctx context.Context, id int, warehouseId int, pallets []models.ReceivedPalletInput) (*models.ArrivalNotice, error) {
	return models.ReceiveArrivalNotice(ctx, id, warehouseId, pallets)
}

// GeneratePickingWorksheet is the resolver for the generatePickingWorksheet field.
func (r *mutationResolver) GeneratePickingWorksheet(ctx context.Context, releaseGoodName string) (*models.Worksheet, error) {
	return workflow.GeneratePickingWorksheet(ctx, releaseGoodName)
}

// ActivatePickingWorksheet is the resolver for the activatePickingWorksheet field.
func (r *mutationResolver) ActivatePickingWorksheet(ctx context.Context, worksheetName string) (*models.Worksheet, error) {
	return workflow.ActivatePickingWorksheet(ctx, worksheetName)
}

// CompletePickingWorksheet is the resolver for the completePickingWorksheet field.
func (r *mutationResolver) CompletePickingWorksheet(ctx context.Context, worksheetName string, pickedItems []workflow.PickedItemInput) (*models.Worksheet, error) {
	return workflow.CompletePickingWorksheet(ctx, worksheetName, pickedItems)
}

// ActivateLoadingWorksheet is the resolver for the activateLoadingWorksheet field.
func (r *mutationResolver) ActivateLoadingWorksheet(ctx context.Context, worksheetName string) (*models.Worksheet, error) {
	return workflow.ActivateLoadingWorksheet(ctx, worksheetName)
}

// CompleteLoadingWorksheet is the resolver for the completeLoadingWorksheet field.
func (r *mutationResolver) CompleteLoadingWorksheet(ctx context.Context, worksheetName string, truckNo *string) (*models.Worksheet, error) {
	truck := ""
	if truckNo != nil {
		truck = *truckNo
	}
	return workflow.CompleteLoadingWorksheet(ctx, worksheetName, truck)
}

// UpsertNumberSeries is the resolver for the upsertNumberSeries field.
func (r *mutationResolver) UpsertNumberSeries(ctx context.Context, input models.NewNumberSeries) (*models.NumberSeries, error) {
	return models.UpsertNumberSeries(ctx, &input)
}

// Product is the resolver for the product field.
func (r *orderInventoryResolver) Product(ctx context.Context, obj *models.OrderInventory) (*models.Product, error) {
	return middlewares.GetProduct(ctx, obj.ProductId)
}

// Inventory is the resolver for the inventory field.
func (r *orderInventoryResolver) Inventory(ctx context.Context, obj *models.OrderInventory) (*models.Inventory, error) {
	if obj.InventoryId == nil {
		return nil, nil
	}
	return middlewares.GetInventory(ctx, *obj.InventoryId)
}

// Me is the resolver for the me field.
func (r *queryResolver) Me(ctx context.Context) (*models.User, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, errors.New("user id is required")
	}
	return models.GetUser(ctx, userId)
}

// Domain is the resolver for the domain field.
func (r *queryResolver) Domain(ctx context.Context, id string) (*models.Domain, error) {
	return models.GetDomainById(ctx, id)
}

// Domains is the resolver for the domains field.
func (r *queryResolver) Domains(ctx context.Context, name *string) ([]*models.Domain, error) {
	return models.ListDomain(ctx, name)
}

// Users is the resolver for the users field.
func (r *queryResolver) Users(ctx context.Context) ([]*models.User, error) {
	return models.GetAllUsers(ctx)
}

// User is the resolver for the user field.
func (r *queryResolver) User(ctx context.Context, id int) (*models.User, error) {
	return models.GetUser(ctx, id)
}

// Bizplace is the resolver for the bizplace field.
func (r *queryResolver) Bizplace(ctx context.Context, id int) (*models.Bizplace, error) {
	return models.GetBizplace(ctx, id)
}

// Bizplaces is the resolver for the bizplaces field.
func (r *queryResolver) Bizplaces(ctx context.Context, name *string) ([]*models.Bizplace, error) {
	return models.ListBizplace(ctx, name)
}

// Warehouse is the resolver for the warehouse field.
func (r *queryResolver) Warehouse(ctx context.Context, id int) (*models.Warehouse, error) {
	return models.GetWarehouse(ctx, id)
}

// Warehouses is the resolver for the warehouses field.
func (r *queryResolver) Warehouses(ctx context.Context, name *string) ([]*models.Warehouse, error) {
	return models.ListWarehouse(ctx, name)
}

// Location is the resolver for the location field.
func (r *queryResolver) Location(ctx context.Context, id int) (*models.Location, error) {
	return models.GetLocation(ctx, id)
}

// Locations is the resolver for the locations field.
func (r *queryResolver) Locations(ctx context.Context, warehouseId *int, name *string) ([]*models.Location, error) {
	return models.ListLocation(ctx, warehouseId, name)
}

// Product is the resolver for the product field.
func (r *queryResolver) Product(ctx context.Context, id int) (*models.Product, error) {
	return models.GetProduct(ctx, id)
}

// Products is the resolver for the products field.
func (r *queryResolver) Products(ctx context.Context, bizplaceId *int, name *string) ([]*models.Product, error) {
	return models.ListProduct(ctx, bizplaceId, name)
}

// Inventory is the resolver for the inventory field.
func (r *queryResolver) Inventory(ctx context.Context, id int) (*models.Inventory, error) {
	return models.GetInventory(ctx, id)
}

// InventoryByPalletId is the resolver for the inventoryByPalletId field.
func (r *queryResolver) InventoryByPalletId(ctx context.Context, palletId string) (*models.Inventory, error) {
	return models.GetInventoryByPalletId(ctx, palletId)
}

// Inventories is the resolver for the inventories field.
func (r *queryResolver) Inventories(ctx context.Context, filter *models.InventoryFilter) ([]*models.Inventory, error) {
	return models.ListInventory(ctx, filter)
}

// PaginateInventory is the resolver for the paginateInventory field.
func (r *queryResolver) PaginateInventory(ctx context.Context, limit int, after *string, filter *models.InventoryFilter) (*models.InventoriesConnection, error) {
	edges, pageInfo, err := models.PaginateInventory(ctx, filter, limit, after)
	if err != nil {
		return nil, err
	}
	return &models.InventoriesConnection{Edges: toInventoryEdges(edges), PageInfo: pageInfo}, nil
}

// InventoryHistories is the resolver for the inventoryHistories field.
func (r *queryResolver) InventoryHistories(ctx context.Context, filter *models.InventoryHistoryFilter) ([]*models.InventoryHistory, error) {
	return models.ListInventoryHistory(ctx, filter)
}

// PaginateInventoryHistory is the resolver for the paginateInventoryHistory field.
func (r *queryResolver) PaginateInventoryHistory(ctx context.Context, limit int, after *string, filter *models.InventoryHistoryFilter) (*models.InventoryHistoriesConnection, error) {
	edges, pageInfo, err := models.PaginateInventoryHistory(ctx, filter, limit, after)
	if err != nil {
		return nil, err
	}
	return &models.InventoryHistoriesConnection{Edges: toInventoryHistoryEdges(edges), PageInfo: pageInfo}, nil
}

// ReleaseGood is the resolver for the releaseGood field.
func (r *queryResolver) ReleaseGood(ctx context.Context, id int) (*models.ReleaseGood, error) {
	return models.GetReleaseGood(ctx, id)
}

// ReleaseGoodByName is the resolver for the releaseGoodByName field.
func (r *queryResolver) ReleaseGoodByName(ctx context.Context, name string) (*models.ReleaseGood, error) {
	return models.GetReleaseGoodByName(ctx, name)
}

// PaginateReleaseGood is the resolver for the paginateReleaseGood field.
func (r *queryResolver) PaginateReleaseGood(ctx context.Context, limit int, after *string, filter *models.ReleaseGoodFilter) (*models.ReleaseGoodsConnection, error) {
	edges, pageInfo, err := models.PaginateReleaseGood(ctx, filter, limit, after)
	if err != nil {
		return nil, err
	}
	return &models.ReleaseGoodsConnection{Edges: toReleaseGoodEdges(edges), PageInfo: pageInfo}, nil
}

// ArrivalNotice is the resolver for the arrivalNotice field.
func (r *queryResolver) ArrivalNotice(ctx context.Context, id int) (*models.ArrivalNotice, error) {
	return models.GetArrivalNotice(ctx, id)
}

// PaginateArrivalNotice is the resolver for the paginateArrivalNotice field.
func (r *queryResolver) PaginateArrivalNotice(ctx context.Context, limit int, after *string, filter *models.ArrivalNoticeFilter) (*models.ArrivalNoticesConnection, error) {
	edges, pageInfo, err := models.PaginateArrivalNotice(ctx, filter, limit, after)
	if err != nil {
		return nil, err
	}
	return &models.ArrivalNoticesConnection{Edges: toArrivalNoticeEdges(edges), PageInfo: pageInfo}, nil
}

// Worksheet is the resolver for the worksheet field.
func (r *queryResolver) Worksheet(ctx context.Context, id int) (*models.Worksheet, error) {
	return models.GetWorksheet(ctx, id)
}

// WorksheetByName is the resolver for the worksheetByName field.
func (r *queryResolver) WorksheetByName(ctx context.Context, name string) (*models.Worksheet, error) {
	return models.GetWorksheetByName(ctx, name)
}

// Worksheets is the resolver for the worksheets field.
func (r *queryResolver) Worksheets(ctx context.Context, filter *models.WorksheetFilter) ([]*models.Worksheet, error) {
	return models.ListWorksheet(ctx, filter)
}

// NumberSeries is the resolver for the numberSeries field.
func (r *queryResolver) NumberSeries(ctx context.Context) ([]*models.NumberSeries, error) {
	return models.ListNumberSeries(ctx)
}

// Bizplace is the resolver for the bizplace field.
func (r *releaseGoodResolver) Bizplace(ctx context.Context, obj *models.ReleaseGood) (*models.Bizplace, error) {
	return middlewares.GetBizplace(ctx, obj.BizplaceId)
}

// OrderInventories is the resolver for the orderInventories field.
func (r *releaseGoodResolver) OrderInventories(ctx context.Context, obj *models.ReleaseGood) ([]*models.OrderInventory, error) {
	return middlewares.GetOrderInventories(ctx, obj.ID)
}

// ReleaseGood is the resolver for the releaseGood field.
func (r *worksheetResolver) ReleaseGood(ctx context.Context, obj *models.Worksheet) (*models.ReleaseGood, error) {
	return middlewares.GetReleaseGood(ctx, obj.ReleaseGoodId)
}

// Details is the resolver for the details field.
func (r *worksheetResolver) Details(ctx context.Context, obj *models.Worksheet) ([]*models.WorksheetDetail, error) {
	return middlewares.GetWorksheetDetails(ctx, obj.ID)
}

// Inventory is the resolver for the inventory field.
func (r *worksheetDetailResolver) Inventory(ctx context.Context, obj *models.WorksheetDetail) (*models.Inventory, error) {
	if obj.InventoryId == 0 {
		return nil, nil
	}
	return middlewares.GetInventory(ctx, obj.InventoryId)
}

// ArrivalNotice returns ArrivalNoticeResolver implementation.
func (r *Resolver) ArrivalNotice() ArrivalNoticeResolver { return &arrivalNoticeResolver{r} }

// ArrivalNoticeProduct returns ArrivalNoticeProductResolver implementation.
func (r *Resolver) ArrivalNoticeProduct() ArrivalNoticeProductResolver {
	return &arrivalNoticeProductResolver{r}
}

// Inventory returns InventoryResolver implementation.
func (r *Resolver) Inventory() InventoryResolver { return &inventoryResolver{r} }

// InventoryHistory returns InventoryHistoryResolver implementation.
func (r *Resolver) InventoryHistory() InventoryHistoryResolver { return &inventoryHistoryResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// OrderInventory returns OrderInventoryResolver implementation.
func (r *Resolver) OrderInventory() OrderInventoryResolver { return &orderInventoryResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// ReleaseGood returns ReleaseGoodResolver implementation.
func (r *Resolver) ReleaseGood() ReleaseGoodResolver { return &releaseGoodResolver{r} }

// Worksheet returns WorksheetResolver implementation.
func (r *Resolver) Worksheet() WorksheetResolver { return &worksheetResolver{r} }

// WorksheetDetail returns WorksheetDetailResolver implementation.
func (r *Resolver) WorksheetDetail() WorksheetDetailResolver { return &worksheetDetailResolver{r} }

type arrivalNoticeResolver struct{ *Resolver }
type arrivalNoticeProductResolver struct{ *Resolver }
type inventoryResolver struct{ *Resolver }
type inventoryHistoryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type orderInventoryResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type releaseGoodResolver struct{ *Resolver }
type worksheetResolver struct{ *Resolver }
type worksheetDetailResolver struct{ *Resolver }
