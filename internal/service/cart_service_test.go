package service

import (
	"context"
	"errors"
	"testing"

	"github.com/techfood-api/internal/cache"
	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/repository"
)

type fakeMenuRepo struct {
	items map[uint]*models.MenuItem
}

func (r *fakeMenuRepo) List(filter repository.MenuItemListFilter) ([]models.MenuItem, int64, error) {
	return nil, 0, nil
}

func (r *fakeMenuRepo) GetByID(id uint) (*models.MenuItem, error) {
	return r.items[id], nil
}

func (r *fakeMenuRepo) GetByIDWithRestaurant(id uint) (*models.MenuItem, error) {
	return r.items[id], nil
}

func (r *fakeMenuRepo) Create(item *models.MenuItem) error { return nil }
func (r *fakeMenuRepo) Update(item *models.MenuItem) error { return nil }
func (r *fakeMenuRepo) Delete(id uint) error               { return nil }

func testMoney(t *testing.T, s string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(s)
	if err != nil {
		t.Fatalf("parse money %q: %v", s, err)
	}
	return m
}

func newTestCartService(t *testing.T) *CartService {
	t.Helper()
	menuRepo := &fakeMenuRepo{items: map[uint]*models.MenuItem{
		11: {
			ID:           11,
			RestaurantID: 1,
			Name:         "Hamburguesa",
			Price:        testMoney(t, "8.99"),
			IsAvailable:  true,
			Restaurant:   &models.Restaurant{ID: 1, Name: "Burger House"},
		},
		12: {
			ID:           12,
			RestaurantID: 1,
			Name:         "Papas",
			Price:        testMoney(t, "3.25"),
			IsAvailable:  true,
			Restaurant:   &models.Restaurant{ID: 1, Name: "Burger House"},
		},
		21: {
			ID:           21,
			RestaurantID: 2,
			Name:         "Sushi",
			Price:        testMoney(t, "12.50"),
			IsAvailable:  true,
			Restaurant:   &models.Restaurant{ID: 2, Name: "Sushi Bar"},
		},
		31: {
			ID:           31,
			RestaurantID: 1,
			Name:         "Agotado",
			Price:        testMoney(t, "5.00"),
			IsAvailable:  false,
		},
	}}
	return NewCartService(cache.NewMemoryCartStore(), menuRepo)
}

func TestCartServiceAddSnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(t)

	cart, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 2})
	if err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cart.Items))
	}
	item := cart.Items[0]
	if item.UnitPrice.String() != "8.99" {
		t.Fatalf("expected frozen unit price 8.99, got %s", item.UnitPrice.String())
	}
	if item.RestaurantID != 1 || item.RestaurantName != "Burger House" {
		t.Fatalf("expected restaurant snapshot, got %d %q", item.RestaurantID, item.RestaurantName)
	}
	if cart.Total().String() != "17.98" {
		t.Fatalf("expected total 17.98, got %s", cart.Total().String())
	}
}

func TestCartServiceAddMergesQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(t)

	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 1}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	cart, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 2})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %+v", cart.Items)
	}
}

func TestCartServiceItemQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(t)

	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 2}); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	qty, err := svc.ItemQuantity(ctx, "s1", 11)
	if err != nil {
		t.Fatalf("item quantity: %v", err)
	}
	if qty != 2 {
		t.Fatalf("expected quantity 2, got %d", qty)
	}
	qty, err = svc.ItemQuantity(ctx, "s1", 12)
	if err != nil {
		t.Fatalf("item quantity for absent item: %v", err)
	}
	if qty != 0 {
		t.Fatalf("expected 0 for absent item, got %d", qty)
	}
	qty, err = svc.ItemQuantity(ctx, "nadie", 11)
	if err != nil {
		t.Fatalf("item quantity for empty session: %v", err)
	}
	if qty != 0 {
		t.Fatalf("expected 0 for empty session, got %d", qty)
	}
}

func TestCartServiceRejectsOtherRestaurant(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(t)

	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 1}); err != nil {
		t.Fatalf("add burger: %v", err)
	}
	_, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 21, Quantity: 1})
	if !errors.Is(err, ErrRestaurantMismatch) {
		t.Fatalf("expected ErrRestaurantMismatch, got %v", err)
	}

	cart, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].MenuItemID != 11 {
		t.Fatalf("cart changed after rejected add: %+v", cart.Items)
	}
}

func TestCartServiceReplaceCartSwitchesRestaurant(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(t)

	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 1}); err != nil {
		t.Fatalf("add burger: %v", err)
	}
	cart, err := svc.ReplaceCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 21, Quantity: 2})
	if err != nil {
		t.Fatalf("replace cart: %v", err)
	}
	if cart.RestaurantID() != 2 {
		t.Fatalf("expected restaurant 2, got %d", cart.RestaurantID())
	}
	if len(cart.Items) != 1 || cart.Items[0].MenuItemID != 21 || cart.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart after replace: %+v", cart.Items)
	}
}

func TestCartServiceRejectsUnavailableMenuItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(t)

	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 31, Quantity: 1}); !errors.Is(err, ErrMenuItemNotAvailable) {
		t.Fatalf("expected ErrMenuItemNotAvailable, got %v", err)
	}
	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 999, Quantity: 1}); !errors.Is(err, ErrMenuItemNotAvailable) {
		t.Fatalf("expected ErrMenuItemNotAvailable for unknown item, got %v", err)
	}
}

func TestCartServiceUpdateQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(t)

	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 12, Quantity: 1}); err != nil {
		t.Fatalf("add papas: %v", err)
	}

	cart, err := svc.UpdateQuantity(ctx, "s1", 11, 0)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].MenuItemID != 12 {
		t.Fatalf("expected only papas left, got %+v", cart.Items)
	}

	count, err := svc.ItemCount(ctx, "s1")
	if err != nil {
		t.Fatalf("item count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
}

func TestCartServiceClearCart(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(t)

	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.ClearCart(ctx, "s1"); err != nil {
		t.Fatalf("clear cart: %v", err)
	}
	cart, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart after clear")
	}
	if cart.RestaurantID() != 0 {
		t.Fatalf("expected no restaurant lock after clear, got %d", cart.RestaurantID())
	}
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(t)

	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 1}); err != nil {
		t.Fatalf("add s1: %v", err)
	}
	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s2", MenuItemID: 21, Quantity: 1}); err != nil {
		t.Fatalf("add s2: %v", err)
	}

	cart1, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("get s1: %v", err)
	}
	cart2, err := svc.GetCart(ctx, "s2")
	if err != nil {
		t.Fatalf("get s2: %v", err)
	}
	if cart1.RestaurantID() != 1 || cart2.RestaurantID() != 2 {
		t.Fatalf("sessions leaked: s1=%d s2=%d", cart1.RestaurantID(), cart2.RestaurantID())
	}
}

func TestCartServiceRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestCartService(t)

	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 0}); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected ErrCartItemInvalid for zero quantity, got %v", err)
	}
	if _, err := svc.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 0, Quantity: 1}); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected ErrCartItemInvalid for zero menu item, got %v", err)
	}
	if _, err := svc.GetCart(ctx, ""); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected ErrCartItemInvalid for empty session, got %v", err)
	}
}
