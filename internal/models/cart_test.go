package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func cartItemFixture(menuItemID uint, restaurantID uint, price string, quantity int) CartItem {
	d, _ := decimal.NewFromString(price)
	return CartItem{
		MenuItemID:     menuItemID,
		Name:           "item",
		UnitPrice:      NewMoneyFromDecimal(d),
		Quantity:       quantity,
		RestaurantID:   restaurantID,
		RestaurantName: "restaurant",
	}
}

func TestCartAddItemMergesSameMenuItem(t *testing.T) {
	cart := NewCart()
	if err := cart.AddItem(cartItemFixture(1, 5, "8.99", 2)); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := cart.AddItem(cartItemFixture(1, 5, "8.99", 3)); err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestCartAddItemRejectsOtherRestaurant(t *testing.T) {
	cart := NewCart()
	if err := cart.AddItem(cartItemFixture(1, 5, "8.99", 1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	before := cart.Total().String()

	err := cart.AddItem(cartItemFixture(2, 6, "4.50", 1))
	if !errors.Is(err, ErrRestaurantMismatch) {
		t.Fatalf("expected ErrRestaurantMismatch, got %v", err)
	}
	if len(cart.Items) != 1 || cart.Total().String() != before {
		t.Fatalf("cart changed after rejected add: %+v", cart.Items)
	}
}

func TestCartAddItemRejectsInvalidQuantity(t *testing.T) {
	cart := NewCart()
	if err := cart.AddItem(cartItemFixture(1, 5, "8.99", 0)); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
	if err := cart.AddItem(cartItemFixture(1, 5, "8.99", -3)); err == nil {
		t.Fatalf("expected error for negative quantity")
	}
	if !cart.IsEmpty() {
		t.Fatalf("cart should stay empty")
	}
}

func TestCartTotalsComputedOnRead(t *testing.T) {
	cart := NewCart()
	_ = cart.AddItem(cartItemFixture(1, 5, "8.99", 2))
	_ = cart.AddItem(cartItemFixture(2, 5, "3.25", 1))

	if got := cart.Total().String(); got != "21.23" {
		t.Fatalf("expected total 21.23, got %s", got)
	}
	if got := cart.ItemCount(); got != 3 {
		t.Fatalf("expected item count 3, got %d", got)
	}
	if got := cart.RestaurantID(); got != 5 {
		t.Fatalf("expected restaurant 5, got %d", got)
	}

	cart.SetQuantity(1, 1)
	if got := cart.Total().String(); got != "12.24" {
		t.Fatalf("expected total 12.24 after update, got %s", got)
	}
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	viaSet := NewCart()
	_ = viaSet.AddItem(cartItemFixture(1, 5, "8.99", 2))
	viaSet.SetQuantity(1, 0)

	viaRemove := NewCart()
	_ = viaRemove.AddItem(cartItemFixture(1, 5, "8.99", 2))
	viaRemove.RemoveItem(1)

	if !viaSet.IsEmpty() || !viaRemove.IsEmpty() {
		t.Fatalf("SetQuantity(id, 0) must behave like RemoveItem")
	}
}

func TestCartNeverHoldsNonPositiveQuantity(t *testing.T) {
	cart := NewCart()
	_ = cart.AddItem(cartItemFixture(1, 5, "8.99", 2))
	_ = cart.AddItem(cartItemFixture(2, 5, "3.25", 4))
	cart.SetQuantity(2, -1)
	cart.SetQuantity(1, 3)
	cart.RemoveItem(99) // no-op
	_ = cart.AddItem(cartItemFixture(3, 5, "1.00", 1))

	for _, item := range cart.Items {
		if item.Quantity <= 0 {
			t.Fatalf("cart holds non-positive quantity: %+v", item)
		}
	}
	expected := Money{}
	for _, item := range cart.Items {
		expected = expected.Add(item.Subtotal())
	}
	if cart.Total().String() != expected.String() {
		t.Fatalf("total mismatch: %s vs %s", cart.Total(), expected)
	}
}

func TestCartRemoveItemAbsentIsNoOp(t *testing.T) {
	cart := NewCart()
	_ = cart.AddItem(cartItemFixture(1, 5, "8.99", 2))
	cart.RemoveItem(42)
	if len(cart.Items) != 1 {
		t.Fatalf("remove of absent line must not change cart")
	}
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	_ = cart.AddItem(cartItemFixture(1, 5, "8.99", 2))
	cart.Clear()
	if !cart.IsEmpty() || cart.RestaurantID() != 0 {
		t.Fatalf("expected empty cart after clear")
	}
	// clearing frees the restaurant lock
	if err := cart.AddItem(cartItemFixture(2, 6, "4.50", 1)); err != nil {
		t.Fatalf("add after clear failed: %v", err)
	}
}
