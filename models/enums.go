package models

import (
	"errors"
	"io"
	"strconv"
)

type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "PENDING"
	OrderStatusReadyToPick OrderStatus = "READY_TO_PICK"
	OrderStatusPicking     OrderStatus = "PICKING"
	OrderStatusReadyToLoad OrderStatus = "READY_TO_LOAD"
	OrderStatusLoading     OrderStatus = "LOADING"
	OrderStatusDone        OrderStatus = "DONE"
	OrderStatusCancelled   OrderStatus = "CANCELLED"
)

// convert enum to send response
func (t OrderStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

// convert input to enum type
func (t *OrderStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("order status must be string")
	}
	orderStatuses := map[string]OrderStatus{
		"PENDING":       OrderStatusPending,
		"READY_TO_PICK": OrderStatusReadyToPick,
		"PICKING":       OrderStatusPicking,
		"READY_TO_LOAD": OrderStatusReadyToLoad,
		"LOADING":       OrderStatusLoading,
		"DONE":          OrderStatusDone,
		"CANCELLED":     OrderStatusCancelled,
	}
	*t, ok = orderStatuses[str]
	if !ok {
		return errors.New("invalid order status")
	}
	return nil
}

type OrderInventoryStatus string

const (
	OrderInventoryStatusPending     OrderInventoryStatus = "PENDING"
	OrderInventoryStatusReadyToPick OrderInventoryStatus = "READY_TO_PICK"
	OrderInventoryStatusPicking     OrderInventoryStatus = "PICKING"
	OrderInventoryStatusPicked      OrderInventoryStatus = "PICKED"
	OrderInventoryStatusLoaded      OrderInventoryStatus = "LOADED"
	OrderInventoryStatusCancelled   OrderInventoryStatus = "CANCELLED"
)

func (t OrderInventoryStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *OrderInventoryStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("order inventory status must be string")
	}
	statuses := map[string]OrderInventoryStatus{
		"PENDING":       OrderInventoryStatusPending,
		"READY_TO_PICK": OrderInventoryStatusReadyToPick,
		"PICKING":       OrderInventoryStatusPicking,
		"PICKED":        OrderInventoryStatusPicked,
		"LOADED":        OrderInventoryStatusLoaded,
		"CANCELLED":     OrderInventoryStatusCancelled,
	}
	*t, ok = statuses[str]
	if !ok {
		return errors.New("invalid order inventory status")
	}
	return nil
}

type WorksheetType string

const (
	WorksheetTypePicking WorksheetType = "PICKING"
	WorksheetTypeLoading WorksheetType = "LOADING"
	WorksheetTypePutaway WorksheetType = "PUTAWAY"
)

func (t WorksheetType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *WorksheetType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("worksheet type must be string")
	}
	switch str {
	case "PICKING":
		*t = WorksheetTypePicking
	case "LOADING":
		*t = WorksheetTypeLoading
	case "PUTAWAY":
		*t = WorksheetTypePutaway
	default:
		return errors.New("invalid worksheet type")
	}
	return nil
}

type WorksheetStatus string

const (
	WorksheetStatusDeactivated WorksheetStatus = "DEACTIVATED"
	WorksheetStatusActive      WorksheetStatus = "ACTIVE"
	WorksheetStatusDone        WorksheetStatus = "DONE"
	WorksheetStatusCancelled   WorksheetStatus = "CANCELLED"
)

func (t WorksheetStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *WorksheetStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("worksheet status must be string")
	}
	switch str {
	case "DEACTIVATED":
		*t = WorksheetStatusDeactivated
	case "ACTIVE":
		*t = WorksheetStatusActive
	case "DONE":
		*t = WorksheetStatusDone
	case "CANCELLED":
		*t = WorksheetStatusCancelled
	default:
		return errors.New("invalid worksheet status")
	}
	return nil
}

type InventoryStatus string

const (
	InventoryStatusUnloaded   InventoryStatus = "UNLOADED"
	InventoryStatusStored     InventoryStatus = "STORED"
	InventoryStatusTerminated InventoryStatus = "TERMINATED"
)

func (t InventoryStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *InventoryStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("inventory status must be string")
	}
	switch str {
	case "UNLOADED":
		*t = InventoryStatusUnloaded
	case "STORED":
		*t = InventoryStatusStored
	case "TERMINATED":
		*t = InventoryStatusTerminated
	default:
		return errors.New("invalid inventory status")
	}
	return nil
}

type InventoryTransactionType string

const (
	InventoryTransactionTypeUnloading  InventoryTransactionType = "UNLOADING"
	InventoryTransactionTypePutaway    InventoryTransactionType = "PUTAWAY"
	InventoryTransactionTypePicking    InventoryTransactionType = "PICKING"
	InventoryTransactionTypeLoading    InventoryTransactionType = "LOADING"
	InventoryTransactionTypeAdjustment InventoryTransactionType = "ADJUSTMENT"
	InventoryTransactionTypeTerminated InventoryTransactionType = "TERMINATED"
)

func (t InventoryTransactionType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *InventoryTransactionType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("inventory transaction type must be string")
	}
	transactionTypes := map[string]InventoryTransactionType{
		"UNLOADING":  InventoryTransactionTypeUnloading,
		"PUTAWAY":    InventoryTransactionTypePutaway,
		"PICKING":    InventoryTransactionTypePicking,
		"LOADING":    InventoryTransactionTypeLoading,
		"ADJUSTMENT": InventoryTransactionTypeAdjustment,
		"TERMINATED": InventoryTransactionTypeTerminated,
	}
	*t, ok = transactionTypes[str]
	if !ok {
		return errors.New("invalid inventory transaction type")
	}
	return nil
}

type LocationType string

const (
	LocationTypeBuffer LocationType = "BUFFER"
	LocationTypeShelf  LocationType = "SHELF"
	LocationTypeFloor  LocationType = "FLOOR"
)

func (t LocationType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *LocationType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("location type must be string")
	}
	switch str {
	case "BUFFER":
		*t = LocationTypeBuffer
	case "SHELF":
		*t = LocationTypeShelf
	case "FLOOR":
		*t = LocationTypeFloor
	default:
		return errors.New("invalid location type")
	}
	return nil
}

type UserRole string

const (
	UserRoleAdmin  UserRole = "A"
	UserRoleOffice UserRole = "O"
	UserRoleWorker UserRole = "W"
)

func (p UserRole) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(p))))
}

func (p *UserRole) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("user role must be string")
	}
	switch str {
	case "A":
		*p = UserRoleAdmin
	case "O":
		*p = UserRoleOffice
	case "W":
		*p = UserRoleWorker
	default:
		return errors.New("invalid user role")
	}
	return nil
}
