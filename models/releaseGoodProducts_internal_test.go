package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassifyLineChange(t *testing.T) {
	cases := []struct {
		name      string
		current   string
		requested string
		want      lineChange
	}{
		{"zero cancels", "10", "0", lineChangeCancel},
		{"smaller reduces", "10", "4", lineChangeReduce},
		{"larger increases", "10", "15", lineChangeIncrease},
		{"same is a noop", "10", "10", lineChangeNoop},
		{"same value different scale is a noop", "10", "10.000", lineChangeNoop},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			current, _ := decimal.NewFromString(c.current)
			requested, _ := decimal.NewFromString(c.requested)
			if got := classifyLineChange(current, requested); got != c.want {
				t.Fatalf("classifyLineChange(%s, %s) = %d, want %d", c.current, c.requested, got, c.want)
			}
		})
	}
}

func TestValidatePickedQty(t *testing.T) {
	if err := validatePickedQty(decimal.NewFromInt(5), decimal.NewFromInt(5)); err != nil {
		t.Fatalf("reducing to exactly the picked qty must be allowed: %v", err)
	}
	if err := validatePickedQty(decimal.NewFromInt(8), decimal.NewFromInt(5)); err != nil {
		t.Fatalf("reducing above the picked qty must be allowed: %v", err)
	}
	err := validatePickedQty(decimal.NewFromInt(3), decimal.NewFromInt(5))
	if err == nil {
		t.Fatal("reducing below the picked qty must fail")
	}
	if !strings.Contains(err.Error(), "already picked") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestReleaseGoodProductInputValidate(t *testing.T) {
	inv := 2
	valid := ReleaseGoodProductInput{
		ProductId:   1,
		InventoryId: &inv,
		ReleaseQty:  decimal.NewFromInt(3),
	}
	if err := valid.validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	// a line without an inventory is a product-level request, not an error
	generic := ReleaseGoodProductInput{ProductId: 1, ReleaseQty: decimal.NewFromInt(3)}
	if err := generic.validate(); err != nil {
		t.Fatalf("inventory-less input rejected: %v", err)
	}

	zero := 0
	cases := []struct {
		name  string
		input ReleaseGoodProductInput
	}{
		{"missing product", ReleaseGoodProductInput{InventoryId: &inv, ReleaseQty: decimal.NewFromInt(3)}},
		{"non-positive inventory", ReleaseGoodProductInput{ProductId: 1, InventoryId: &zero, ReleaseQty: decimal.NewFromInt(3)}},
		{"zero qty", ReleaseGoodProductInput{ProductId: 1, InventoryId: &inv}},
		{"negative qty", ReleaseGoodProductInput{ProductId: 1, InventoryId: &inv, ReleaseQty: decimal.NewFromInt(-1)}},
		{"negative weight", ReleaseGoodProductInput{ProductId: 1, InventoryId: &inv, ReleaseQty: decimal.NewFromInt(1), ReleaseWeight: decimal.NewFromInt(-1)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.input.validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestFindMatchingOrderInventory(t *testing.T) {
	invA, invB := 11, 12
	rg := &ReleaseGood{OrderInventories: []OrderInventory{
		{ID: 1, ProductId: 1, InventoryId: &invA, BatchId: "B1", PackingType: "CARTON"},
		{ID: 2, ProductId: 1, InventoryId: &invB, BatchId: "B1", PackingType: "CARTON"},
		{ID: 3, ProductId: 2, InventoryId: nil, BatchId: "B2", PackingType: "PALLET"},
	}}

	got := findMatchingOrderInventory(rg, &ReleaseGoodProductInput{
		ProductId: 1, InventoryId: &invB, BatchId: "B1", PackingType: "CARTON",
	})
	if got == nil || got.ID != 2 {
		t.Fatalf("pallet request must match the line on the same pallet, got %+v", got)
	}

	// product-level request matches regardless of the line's pallet
	got = findMatchingOrderInventory(rg, &ReleaseGoodProductInput{
		ProductId: 1, BatchId: "B1", PackingType: "CARTON",
	})
	if got == nil || got.ID != 1 {
		t.Fatalf("product-level request must match the first line of the product, got %+v", got)
	}

	got = findMatchingOrderInventory(rg, &ReleaseGoodProductInput{
		ProductId: 2, BatchId: "B2", PackingType: "PALLET",
	})
	if got == nil || got.ID != 3 {
		t.Fatalf("product-level request must match the inventory-less line, got %+v", got)
	}

	// a pallet request never merges into an inventory-less line
	got = findMatchingOrderInventory(rg, &ReleaseGoodProductInput{
		ProductId: 2, InventoryId: &invA, BatchId: "B2", PackingType: "PALLET",
	})
	if got != nil {
		t.Fatalf("expected no match, got line %d", got.ID)
	}
}

func TestFindActiveOrderInventory(t *testing.T) {
	invA := 21
	rg := &ReleaseGood{OrderInventories: []OrderInventory{
		{ID: 1, ProductId: 1, InventoryId: &invA, BatchId: "B1", PackingType: "CARTON", Status: OrderInventoryStatusCancelled},
		{ID: 2, ProductId: 1, InventoryId: &invA, BatchId: "B1", PackingType: "CARTON", Status: OrderInventoryStatusPending},
		{ID: 3, ProductId: 1, InventoryId: nil, BatchId: "B1", PackingType: "CARTON", Status: OrderInventoryStatusPending},
	}}

	got := findActiveOrderInventory(rg, &ExistingOrderInventoryInput{
		ProductId: 1, InventoryId: &invA, BatchId: "B1", PackingType: "CARTON",
	})
	if got == nil || got.ID != 2 {
		t.Fatalf("cancelled lines must be skipped, got %+v", got)
	}

	got = findActiveOrderInventory(rg, &ExistingOrderInventoryInput{
		ProductId: 1, BatchId: "B1", PackingType: "CARTON",
	})
	if got == nil || got.ID != 3 {
		t.Fatalf("inventory-less key must address the inventory-less line, got %+v", got)
	}

	got = findActiveOrderInventory(rg, &ExistingOrderInventoryInput{
		ProductId: 1, InventoryId: &invA, BatchId: "B9", PackingType: "CARTON",
	})
	if got != nil {
		t.Fatalf("expected no match for unknown batch, got line %d", got.ID)
	}
}

func TestGenerateOrderInventoryName(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := generateOrderInventoryName()
		if !strings.HasPrefix(name, "ORD-I-") {
			t.Fatalf("unexpected name format: %q", name)
		}
		if name != strings.ToUpper(name) {
			t.Fatalf("name must be upper case: %q", name)
		}
		if seen[name] {
			t.Fatalf("duplicate name generated: %q", name)
		}
		seen[name] = true
	}
}
