package models

import (
	"time"

	"github.com/mmdatafocus/warehouse_backend/utils"
)

type Identifier interface {
	GetId() int
}

// interface for dataloader result
type Data interface {
	Identifier
	GetDefault(int) Data
}

// key
func (b Bizplace) GetId() int {
	return b.ID
}

func (b Bizplace) GetDefault(id int) Data {
	return Bizplace{
		ID:        id,
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (p Product) GetId() int {
	return p.ID
}

func (p Product) GetDefault(id int) Data {
	return Product{
		ID:        id,
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (w Warehouse) GetId() int {
	return w.ID
}

func (w Warehouse) GetDefault(id int) Data {
	return Warehouse{
		ID:        id,
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (l Location) GetId() int {
	return l.ID
}

func (l Location) GetDefault(id int) Data {
	return Location{
		ID:        id,
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (inv Inventory) GetId() int {
	return inv.ID
}

func (inv Inventory) GetDefault(id int) Data {
	return Inventory{
		ID:        id,
		Status:    InventoryStatusTerminated,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (rg ReleaseGood) GetId() int {
	return rg.ID
}

func (rg ReleaseGood) GetDefault(id int) Data {
	return ReleaseGood{
		ID:        id,
		Status:    OrderStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (oi OrderInventory) GetId() int {
	return oi.ID
}

func (ws Worksheet) GetId() int {
	return ws.ID
}

func (ws Worksheet) GetDefault(id int) Data {
	return Worksheet{
		ID:        id,
		Status:    WorksheetStatusDeactivated,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (h InventoryHistory) GetId() int {
	return h.ID
}

// loader loading more than one model by one id
type RelatedData interface {
	GetReferenceId() int
}

func (oi OrderInventory) GetReferenceId() int {
	return oi.ReleaseGoodId
}

func (wd WorksheetDetail) GetReferenceId() int {
	return wd.WorksheetId
}

func (p ArrivalNoticeProduct) GetReferenceId() int {
	return p.ArrivalNoticeId
}

// cursors for pagination

func (inv Inventory) GetCursor() string {
	return inv.PalletId
}

func (rg ReleaseGood) GetCursor() string {
	return rg.CreatedAt.Format("2006-01-02 15:04:05.000000")
}

func (an ArrivalNotice) GetCursor() string {
	return an.CreatedAt.Format("2006-01-02 15:04:05.000000")
}

func (an ArrivalNotice) GetId() int {
	return an.ID
}

func (h InventoryHistory) GetCursor() string {
	return h.CreatedAt.Format("2006-01-02 15:04:05.000000")
}

// tenant ownership for cached resources

func (b Bizplace) GetDomainId() string {
	return b.DomainId
}

func (p Product) GetDomainId() string {
	return p.DomainId
}

func (w Warehouse) GetDomainId() string {
	return w.DomainId
}

func (l Location) GetDomainId() string {
	return l.DomainId
}
