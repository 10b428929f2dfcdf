package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/techfood-api/internal/constants"
	"github.com/techfood-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newOrderTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:order_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
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

func mustMoney(t *testing.T, s string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(s)
	if err != nil {
		t.Fatalf("parse money %q: %v", s, err)
	}
	return m
}

func TestOrderRepositoryCreatePersistsItems(t *testing.T) {
	db := newOrderTestDB(t)
	repo := NewOrderRepository(db)

	order := &models.Order{
		OrderNo:        "TF20260828000001",
		UserID:         7,
		RestaurantID:   3,
		Status:         constants.OrderStatusPending,
		Total:          mustMoney(t, "21.23"),
		RecipientName:  "Ana",
		RecipientPhone: "555-0100",
		Address:        "Av. Siempre Viva 742",
		OrderedAt:      time.Now(),
	}
	items := []models.OrderItem{
		{MenuItemID: 11, Name: "Hamburguesa", Quantity: 2, UnitPrice: mustMoney(t, "8.99"), Subtotal: mustMoney(t, "17.98")},
		{MenuItemID: 12, Name: "Papas", Quantity: 1, UnitPrice: mustMoney(t, "3.25"), Subtotal: mustMoney(t, "3.25")},
	}

	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.ID == 0 {
		t.Fatalf("expected order id to be assigned")
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got == nil {
		t.Fatalf("expected order, got nil")
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	for _, item := range got.Items {
		if item.OrderID != order.ID {
			t.Fatalf("item %d not linked to order %d", item.ID, order.ID)
		}
	}
	if got.Total.String() != "21.23" {
		t.Fatalf("expected total 21.23, got %s", got.Total.String())
	}
}

func TestOrderRepositoryCreateRollsBackInTransaction(t *testing.T) {
	db := newOrderTestDB(t)
	repo := NewOrderRepository(db)

	err := db.Transaction(func(tx *gorm.DB) error {
		order := &models.Order{
			OrderNo:      "TF20260828000002",
			UserID:       1,
			RestaurantID: 1,
			Status:       constants.OrderStatusPending,
			Total:        mustMoney(t, "5.00"),
			OrderedAt:    time.Now(),
		}
		items := []models.OrderItem{
			{MenuItemID: 1, Name: "Taco", Quantity: 1, UnitPrice: mustMoney(t, "5.00"), Subtotal: mustMoney(t, "5.00")},
		}
		if err := repo.WithTx(tx).Create(order, items); err != nil {
			return err
		}
		return fmt.Errorf("forced rollback")
	})
	if err == nil {
		t.Fatalf("expected transaction error")
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no orders after rollback, got %d", count)
	}
	if err := db.Model(&models.OrderItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no order items after rollback, got %d", count)
	}
}

func TestOrderRepositoryGetByIDAndUser(t *testing.T) {
	db := newOrderTestDB(t)
	repo := NewOrderRepository(db)

	order := &models.Order{
		OrderNo:      "TF20260828000003",
		UserID:       42,
		RestaurantID: 1,
		Status:       constants.OrderStatusPending,
		Total:        mustMoney(t, "9.00"),
		OrderedAt:    time.Now(),
	}
	if err := repo.Create(order, nil); err != nil {
		t.Fatalf("create order: %v", err)
	}

	got, err := repo.GetByIDAndUser(order.ID, 42)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got == nil {
		t.Fatalf("expected order for owner")
	}

	other, err := repo.GetByIDAndUser(order.ID, 99)
	if err != nil {
		t.Fatalf("get order other user: %v", err)
	}
	if other != nil {
		t.Fatalf("expected nil for other user, got order %d", other.ID)
	}
}

func TestOrderRepositoryListAndUpdateStatus(t *testing.T) {
	db := newOrderTestDB(t)
	repo := NewOrderRepository(db)

	for i := 0; i < 3; i++ {
		order := &models.Order{
			OrderNo:      fmt.Sprintf("TF2026082800010%d", i),
			UserID:       5,
			RestaurantID: 2,
			Status:       constants.OrderStatusPending,
			Total:        mustMoney(t, "10.00"),
			OrderedAt:    time.Now(),
		}
		if err := repo.Create(order, nil); err != nil {
			t.Fatalf("create order %d: %v", i, err)
		}
	}

	orders, total, err := repo.ListByUser(OrderListFilter{UserID: 5, Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(orders) != 2 {
		t.Fatalf("expected page of 2, got %d", len(orders))
	}

	if err := repo.UpdateStatus(orders[0].ID, constants.OrderStatusPreparing, nil); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err := repo.GetByID(orders[0].ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.Status != constants.OrderStatusPreparing {
		t.Fatalf("expected status %s, got %s", constants.OrderStatusPreparing, got.Status)
	}

	byStatus, total, err := repo.ListByRestaurant(OrderListFilter{RestaurantID: 2, Status: constants.OrderStatusPreparing, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list by restaurant: %v", err)
	}
	if total != 1 || len(byStatus) != 1 {
		t.Fatalf("expected 1 preparing order, got total=%d len=%d", total, len(byStatus))
	}
}
