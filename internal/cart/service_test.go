package cart

import (
	"errors"
	"testing"

	"github.com/cityroots/storefront-backend/internal/product"
)

func newTestService() (*Service, *InMemoryStore) {
	store := NewInMemoryStore()
	products := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Monstera Deliciosa", Price: 599, Category: "plants", InStock: true},
		{ID: 2, Name: "Snake Plant", Price: 349, Category: "plants", InStock: true},
	}))
	return NewService(store, products), store
}

func TestService_AddSnapshotsProduct(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.Add("s1", 1, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(c.Lines) != 1 || c.Lines[0].Product.Name != "Monstera Deliciosa" {
		t.Fatalf("expected product snapshot on the line, got %+v", c.Lines)
	}

	// reloaded cart carries the snapshot too
	got := svc.Get("s1")
	if got.TotalPrice() != 599 {
		t.Fatalf("expected persisted subtotal 599, got %v", got.TotalPrice())
	}
}

func TestService_AddUnknownProduct(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Add("s1", 999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestService_AddNonPositiveQuantityRemoves(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Add("s1", 1, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	c, err := svc.Add("s1", 1, -5)
	if err != nil {
		t.Fatalf("add negative: %v", err)
	}
	if c.Contains(1) {
		t.Fatalf("expected line removed, got %+v", c.Lines)
	}
}

func TestService_QuantityClamp(t *testing.T) {
	svc, _ := newTestService()
	c, err := svc.UpdateQuantity("s1", 1, 500)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if c.Lines[0].Quantity != MaxQuantity {
		t.Fatalf("expected clamp to %d, got %d", MaxQuantity, c.Lines[0].Quantity)
	}

	// repeated adds cannot exceed the cap either
	if _, err := svc.Add("s1", 1, 50); err != nil {
		t.Fatalf("add: %v", err)
	}
	got := svc.Get("s1")
	if got.Lines[0].Quantity != MaxQuantity {
		t.Fatalf("expected quantity to stay at %d, got %d", MaxQuantity, got.Lines[0].Quantity)
	}
}

func TestService_LoadFailureYieldsEmptyCart(t *testing.T) {
	svc, store := newTestService()
	store.SeedRaw("s1", []byte(`{not json`))

	c := svc.Get("s1")
	if len(c.Lines) != 0 {
		t.Fatalf("expected empty cart on load failure, got %+v", c.Lines)
	}
}

func TestService_LegacyCartUpgradedOnLoad(t *testing.T) {
	svc, store := newTestService()
	store.SeedRaw("s1", []byte(`[{"item":{"id":2,"name":"Snake Plant","price":349,"inStock":true},"quantity":2}]`))

	c := svc.Get("s1")
	if !c.Contains(2) || c.TotalItems() != 2 {
		t.Fatalf("expected upgraded legacy cart, got %+v", c.Lines)
	}
}

func TestService_ClearDropsStoredCart(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Add("s1", 1, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear("s1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := svc.Get("s1"); len(got.Lines) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", got.Lines)
	}
}
