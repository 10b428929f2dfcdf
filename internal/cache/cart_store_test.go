package cache

import (
	"context"
	"testing"

	"github.com/techfood-api/internal/models"

	"github.com/shopspring/decimal"
)

func TestMemoryCartStoreLoadMissingReturnsEmptyCart(t *testing.T) {
	store := NewMemoryCartStore()
	cart, err := store.Load(context.Background(), "unknown-session")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cart == nil || !cart.IsEmpty() {
		t.Fatalf("expected empty cart for unknown session, got %+v", cart)
	}
}

func TestMemoryCartStoreRoundTrip(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	cart := models.NewCart()
	_ = cart.AddItem(models.CartItem{
		MenuItemID:     1,
		Name:           "Pupusa revuelta",
		Description:    "con curtido",
		UnitPrice:      models.NewMoneyFromDecimal(decimal.RequireFromString("8.99")),
		Quantity:       2,
		RestaurantID:   5,
		RestaurantName: "La Cocina",
		SpecialNotes:   "extra salsa",
	})
	if err := store.Save(ctx, "s1", cart); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(loaded.Items))
	}
	got := loaded.Items[0]
	if got.MenuItemID != 1 || got.Quantity != 2 || got.RestaurantID != 5 {
		t.Fatalf("identity fields did not round-trip: %+v", got)
	}
	if got.UnitPrice.String() != "8.99" {
		t.Fatalf("unit price did not round-trip: %s", got.UnitPrice)
	}
	if loaded.Total().String() != "17.98" {
		t.Fatalf("expected total 17.98, got %s", loaded.Total())
	}
}

func TestMemoryCartStoreSaveOverwritesSnapshot(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	cart := models.NewCart()
	_ = cart.AddItem(models.CartItem{MenuItemID: 1, UnitPrice: models.Money{}, Quantity: 1, RestaurantID: 5})
	_ = store.Save(ctx, "s1", cart)

	cart.SetQuantity(1, 4)
	_ = store.Save(ctx, "s1", cart)

	loaded, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Items[0].Quantity != 4 {
		t.Fatalf("expected latest snapshot, got quantity %d", loaded.Items[0].Quantity)
	}
}

func TestMemoryCartStoreClear(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	cart := models.NewCart()
	_ = cart.AddItem(models.CartItem{MenuItemID: 1, Quantity: 1, RestaurantID: 5})
	_ = store.Save(ctx, "s1", cart)

	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	loaded, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.IsEmpty() {
		t.Fatalf("expected empty cart after clear")
	}
}

func TestMemoryCartStoreSessionsAreIndependent(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	cartA := models.NewCart()
	_ = cartA.AddItem(models.CartItem{MenuItemID: 1, Quantity: 1, RestaurantID: 5})
	_ = store.Save(ctx, "a", cartA)

	cartB, err := store.Load(ctx, "b")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cartB.IsEmpty() {
		t.Fatalf("session b must not observe session a's cart")
	}
}
