package models

type InventoriesEdge Edge[Inventory]

type InventoriesConnection struct {
	Edges    []*InventoriesEdge `json:"edges"`
	PageInfo *PageInfo          `json:"pageInfo"`
}

type InventoryHistoriesEdge Edge[InventoryHistory]

type InventoryHistoriesConnection struct {
	Edges    []*InventoryHistoriesEdge `json:"edges"`
	PageInfo *PageInfo                 `json:"pageInfo"`
}

type ReleaseGoodsEdge Edge[ReleaseGood]

type ReleaseGoodsConnection struct {
	Edges    []*ReleaseGoodsEdge `json:"edges"`
	PageInfo *PageInfo           `json:"pageInfo"`
}

type ArrivalNoticesEdge Edge[ArrivalNotice]

type ArrivalNoticesConnection struct {
	Edges    []*ArrivalNoticesEdge `json:"edges"`
	PageInfo *PageInfo             `json:"pageInfo"`
}
