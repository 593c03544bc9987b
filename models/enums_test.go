package models_test

import (
	"bytes"
	"testing"

	"github.com/mmdatafocus/warehouse_backend/models"
)

func TestOrderStatusUnmarshalGQL(t *testing.T) {
	var status models.OrderStatus
	if err := status.UnmarshalGQL("READY_TO_PICK"); err != nil {
		t.Fatalf("UnmarshalGQL: %v", err)
	}
	if status != models.OrderStatusReadyToPick {
		t.Fatalf("got %q, want READY_TO_PICK", status)
	}

	if err := status.UnmarshalGQL("NOT_A_STATUS"); err == nil {
		t.Fatal("unknown value must be rejected")
	}
	if err := status.UnmarshalGQL(42); err == nil {
		t.Fatal("non-string value must be rejected")
	}
}

func TestOrderStatusMarshalGQL(t *testing.T) {
	var buf bytes.Buffer
	models.OrderStatusCancelled.MarshalGQL(&buf)
	if buf.String() != `"CANCELLED"` {
		t.Fatalf("got %s, want quoted CANCELLED", buf.String())
	}
}

func TestWorksheetEnumsUnmarshalGQL(t *testing.T) {
	var wsType models.WorksheetType
	if err := wsType.UnmarshalGQL("LOADING"); err != nil {
		t.Fatalf("UnmarshalGQL: %v", err)
	}
	if wsType != models.WorksheetTypeLoading {
		t.Fatalf("got %q, want LOADING", wsType)
	}

	var wsStatus models.WorksheetStatus
	if err := wsStatus.UnmarshalGQL("DEACTIVATED"); err != nil {
		t.Fatalf("UnmarshalGQL: %v", err)
	}
	if wsStatus != models.WorksheetStatusDeactivated {
		t.Fatalf("got %q, want DEACTIVATED", wsStatus)
	}
}

func TestUserRoleUnmarshalGQL(t *testing.T) {
	var role models.UserRole
	if err := role.UnmarshalGQL("W"); err != nil {
		t.Fatalf("UnmarshalGQL: %v", err)
	}
	if role != models.UserRoleWorker {
		t.Fatalf("got %q, want W", role)
	}
	if err := role.UnmarshalGQL("X"); err == nil {
		t.Fatal("unknown role must be rejected")
	}
}
