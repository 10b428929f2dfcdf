package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/techfood-api/internal/constants"
	"github.com/techfood-api/internal/logger"
	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/queue"
	"github.com/techfood-api/internal/repository"

	"gorm.io/gorm"
)

// CheckoutInput 结算输入
type CheckoutInput struct {
	SessionID      string
	UserID         uint
	RecipientName  string
	RecipientPhone string
	Address        string
	Notes          string
}

// CheckoutService 结算协调器
// 先校验配送信息与购物车，再在单个事务中落库订单与订单项，
// 订单写入成功之后才清空购物车；清空失败不回滚订单。
type CheckoutService struct {
	db          *gorm.DB
	cartService *CartService
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(db *gorm.DB, cartService *CartService, orderRepo repository.OrderRepository, queueClient *queue.Client) *CheckoutService {
	return &CheckoutService{
		db:          db,
		cartService: cartService,
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// Checkout 从购物车创建订单
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	details, err := normalizeDeliveryDetails(input)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartService.GetCart(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	order, items := buildOrderFromCart(cart, input.UserID, details)

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, items)
	}); err != nil {
		logger.Errorw("checkout_order_persist_failed",
			"session_id", input.SessionID,
			"user_id", input.UserID,
			"restaurant_id", order.RestaurantID,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrOrderPersistFailed, err)
	}
	order.Items = items

	// 订单已持久化，清空失败只记录告警，结算仍视为成功
	if err := s.cartService.ClearCart(ctx, input.SessionID); err != nil {
		logger.Warnw("checkout_cart_clear_failed",
			"session_id", input.SessionID,
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"error", err,
		)
	}

	if s.queueClient != nil {
		if err := s.queueClient.EnqueueOrderPlaced(queue.OrderPlacedPayload{OrderID: order.ID}); err != nil {
			logger.Warnw("checkout_notify_enqueue_failed",
				"order_id", order.ID,
				"order_no", order.OrderNo,
				"error", err,
			)
		}
	}

	logger.Infow("checkout_order_created",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"user_id", order.UserID,
		"restaurant_id", order.RestaurantID,
		"total", order.Total.String(),
		"item_count", len(items),
	)
	return order, nil
}

type deliveryDetails struct {
	RecipientName  string
	RecipientPhone string
	Address        string
	Notes          string
}

func normalizeDeliveryDetails(input CheckoutInput) (deliveryDetails, error) {
	details := deliveryDetails{
		RecipientName:  strings.TrimSpace(input.RecipientName),
		RecipientPhone: strings.TrimSpace(input.RecipientPhone),
		Address:        strings.TrimSpace(input.Address),
		Notes:          strings.TrimSpace(input.Notes),
	}

	var missing []string
	if details.RecipientName == "" {
		missing = append(missing, "recipient_name")
	}
	if details.RecipientPhone == "" {
		missing = append(missing, "recipient_phone")
	}
	if details.Address == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return deliveryDetails{}, NewInvalidDeliveryDetailsError(missing...)
	}
	return details, nil
}

// buildOrderFromCart 从购物车快照构建订单与订单项
// 金额沿用加入购物车时冻结的单价，总价为订单项小计之和
func buildOrderFromCart(cart *models.Cart, userID uint, details deliveryDetails) (*models.Order, []models.OrderItem) {
	now := time.Now()
	order := &models.Order{
		OrderNo:        generateOrderNo(),
		UserID:         userID,
		RestaurantID:   cart.RestaurantID(),
		Status:         constants.OrderStatusPending,
		Total:          cart.Total(),
		RecipientName:  details.RecipientName,
		RecipientPhone: details.RecipientPhone,
		Address:        details.Address,
		Notes:          details.Notes,
		OrderedAt:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, cartItem := range cart.Items {
		items = append(items, models.OrderItem{
			MenuItemID:   cartItem.MenuItemID,
			Name:         cartItem.Name,
			Quantity:     cartItem.Quantity,
			UnitPrice:    cartItem.UnitPrice,
			Subtotal:     cartItem.Subtotal(),
			SpecialNotes: cartItem.SpecialNotes,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return order, items
}

func generateOrderNo() string {
	suffix := "0000"
	if n, err := rand.Int(rand.Reader, big.NewInt(10000)); err == nil {
		suffix = fmt.Sprintf("%04d", n.Int64())
	}
	return fmt.Sprintf("TF%s%s", time.Now().Format("20060102150405"), suffix)
}
