package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/techfood-api/internal/cache"
	"github.com/techfood-api/internal/constants"
	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newCheckoutTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:checkout_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Restaurant{}, &models.MenuItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type checkoutFixture struct {
	db          *gorm.DB
	store       cache.CartStore
	cartService *CartService
	checkout    *CheckoutService
}

func newCheckoutFixture(t *testing.T, store cache.CartStore) *checkoutFixture {
	t.Helper()
	db := newCheckoutTestDB(t)
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
	}}
	cartService := NewCartService(store, menuRepo)
	orderRepo := repository.NewOrderRepository(db)
	return &checkoutFixture{
		db:          db,
		store:       store,
		cartService: cartService,
		checkout:    NewCheckoutService(db, cartService, orderRepo, nil),
	}
}

func validCheckoutInput(sessionID string) CheckoutInput {
	return CheckoutInput{
		SessionID:      sessionID,
		UserID:         7,
		RecipientName:  "Ana",
		RecipientPhone: "555-0100",
		Address:        "Av. Siempre Viva 742",
		Notes:          "sin cebolla",
	}
}

func TestCheckoutEmptyCartFailsBeforePersist(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, cache.NewMemoryCartStore())

	_, err := f.checkout.Checkout(ctx, validCheckoutInput("s1"))
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}

	var count int64
	if err := f.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no orders for empty cart, got %d", count)
	}
}

func TestCheckoutInvalidDeliveryDetails(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, cache.NewMemoryCartStore())
	if _, err := f.cartService.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	input := validCheckoutInput("s1")
	input.RecipientName = "  "
	input.Address = ""
	_, err := f.checkout.Checkout(ctx, input)
	if !errors.Is(err, ErrInvalidDeliveryDetails) {
		t.Fatalf("expected ErrInvalidDeliveryDetails, got %v", err)
	}

	var detailsErr *InvalidDeliveryDetailsError
	if !errors.As(err, &detailsErr) {
		t.Fatalf("expected InvalidDeliveryDetailsError, got %T", err)
	}
	if len(detailsErr.Fields) != 2 {
		t.Fatalf("expected 2 missing fields, got %v", detailsErr.Fields)
	}

	// 校验失败不得动购物车
	cart, err := f.cartService.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.IsEmpty() {
		t.Fatalf("cart must stay intact after validation failure")
	}
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, cache.NewMemoryCartStore())
	if _, err := f.cartService.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 2}); err != nil {
		t.Fatalf("add burger: %v", err)
	}
	if _, err := f.cartService.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 12, Quantity: 1, SpecialNotes: "extra queso"}); err != nil {
		t.Fatalf("add papas: %v", err)
	}

	order, err := f.checkout.Checkout(ctx, validCheckoutInput("s1"))
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.ID == 0 {
		t.Fatalf("expected persisted order id")
	}
	if !strings.HasPrefix(order.OrderNo, "TF") {
		t.Fatalf("unexpected order no %q", order.OrderNo)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.Total.String() != "21.23" {
		t.Fatalf("expected total 21.23, got %s", order.Total.String())
	}
	if order.RestaurantID != 1 {
		t.Fatalf("expected restaurant 1, got %d", order.RestaurantID)
	}

	var persisted models.Order
	if err := f.db.Preload("Items").First(&persisted, order.ID).Error; err != nil {
		t.Fatalf("load persisted order: %v", err)
	}
	if len(persisted.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(persisted.Items))
	}
	for _, item := range persisted.Items {
		if item.Quantity <= 0 {
			t.Fatalf("order item quantity must be positive: %+v", item)
		}
		if item.Subtotal.String() != item.UnitPrice.Mul(item.Quantity).String() {
			t.Fatalf("subtotal mismatch: %+v", item)
		}
	}

	// 订单落库后购物车应被清空
	cart, err := f.cartService.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart after checkout")
	}
}

type failingOrderRepo struct{}

func (r *failingOrderRepo) Create(order *models.Order, items []models.OrderItem) error {
	return fmt.Errorf("db write failed")
}
func (r *failingOrderRepo) GetByID(id uint) (*models.Order, error)              { return nil, nil }
func (r *failingOrderRepo) GetByIDAndUser(id, userID uint) (*models.Order, error) { return nil, nil }
func (r *failingOrderRepo) GetByOrderNo(orderNo string) (*models.Order, error)  { return nil, nil }
func (r *failingOrderRepo) ListByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return nil, 0, nil
}
func (r *failingOrderRepo) ListByRestaurant(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return nil, 0, nil
}
func (r *failingOrderRepo) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return nil, 0, nil
}
func (r *failingOrderRepo) UpdateStatus(id uint, status string, updates map[string]interface{}) error {
	return nil
}
func (r *failingOrderRepo) WithTx(tx *gorm.DB) repository.OrderRepository { return r }

func TestCheckoutPersistFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, cache.NewMemoryCartStore())
	f.checkout = NewCheckoutService(f.db, f.cartService, &failingOrderRepo{}, nil)

	if _, err := f.cartService.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err := f.checkout.Checkout(ctx, validCheckoutInput("s1"))
	if !errors.Is(err, ErrOrderPersistFailed) {
		t.Fatalf("expected ErrOrderPersistFailed, got %v", err)
	}

	// 重试必须仍然可行
	cart, err := f.cartService.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.IsEmpty() {
		t.Fatalf("cart must survive persist failure")
	}
	if cart.Total().String() != "17.98" {
		t.Fatalf("expected total 17.98 preserved, got %s", cart.Total().String())
	}
}

type failingClearStore struct {
	*cache.MemoryCartStore
}

func (s *failingClearStore) Clear(ctx context.Context, sessionID string) error {
	return fmt.Errorf("redis down")
}

func TestCheckoutClearFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, &failingClearStore{MemoryCartStore: cache.NewMemoryCartStore()})

	if _, err := f.cartService.AddToCart(ctx, AddToCartInput{SessionID: "s1", MenuItemID: 11, Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	order, err := f.checkout.Checkout(ctx, validCheckoutInput("s1"))
	if err != nil {
		t.Fatalf("checkout must succeed when only cart clear fails, got %v", err)
	}

	var count int64
	if err := f.db.Model(&models.Order{}).Where("id = ?", order.ID).Count(&count).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected persisted order, got %d", count)
	}
}
