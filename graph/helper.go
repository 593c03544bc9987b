package graph

import (
	"github.com/mmdatafocus/warehouse_backend/models"
)

func toInventoryEdges(edges []models.Edge[models.Inventory]) []*models.InventoriesEdge {
	out := make([]*models.InventoriesEdge, 0, len(edges))
	for _, e := range edges {
		edge := models.InventoriesEdge(e)
		out = append(out, &edge)
	}
	return out
}

func toInventoryHistoryEdges(edges []models.Edge[models.InventoryHistory]) []*models.InventoryHistoriesEdge {
	out := make([]*models.InventoryHistoriesEdge, 0, len(edges))
	for _, e := range edges {
		edge := models.InventoryHistoriesEdge(e)
		out = append(out, &edge)
	}
	return out
}

func toReleaseGoodEdges(edges []models.Edge[models.ReleaseGood]) []*models.ReleaseGoodsEdge {
	out := make([]*models.ReleaseGoodsEdge, 0, len(edges))
	for _, e := range edges {
		edge := models.ReleaseGoodsEdge(e)
		out = append(out, &edge)
	}
	return out
}

func toArrivalNoticeEdges(edges []models.Edge[models.ArrivalNotice]) []*models.ArrivalNoticesEdge {
	out := make([]*models.ArrivalNoticesEdge, 0, len(edges))
	for _, e := range edges {
		edge := models.ArrivalNoticesEdge(e)
		out = append(out, &edge)
	}
	return out
}
