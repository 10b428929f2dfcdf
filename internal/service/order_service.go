package service

import (
	"time"

	"github.com/techfood-api/internal/constants"
	"github.com/techfood-api/internal/logger"
	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/queue"
	"github.com/techfood-api/internal/repository"
)

// OrderService 订单查询与状态管理服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// ListMyOrders 获取用户历史订单
func (s *OrderService) ListMyOrders(userID uint, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrNotFound
	}
	filter.UserID = userID
	return s.orderRepo.ListByUser(filter)
}

// GetMyOrder 获取用户订单详情
func (s *OrderService) GetMyOrder(orderID, userID uint) (*models.Order, error) {
	if orderID == 0 || userID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetMyOrderByNo 按订单编号获取用户订单（下单确认页）
func (s *OrderService) GetMyOrderByNo(orderNo string, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// CancelMyOrder 用户取消自己的订单，仅待处理状态允许
func (s *OrderService) CancelMyOrder(orderID, userID uint) (*models.Order, error) {
	order, err := s.GetMyOrder(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order.Status != constants.OrderStatusPending {
		return nil, ErrOrderStatusInvalid
	}
	return s.transition(order, constants.OrderStatusCancelled)
}

// ListRestaurantOrders 获取餐厅订单列表（商家端）
func (s *OrderService) ListRestaurantOrders(restaurantID uint, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if restaurantID == 0 {
		return nil, 0, ErrNotFound
	}
	filter.RestaurantID = restaurantID
	return s.orderRepo.ListByRestaurant(filter)
}

// ListAllOrders 获取全部订单（管理端）
func (s *OrderService) ListAllOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetOrder 获取订单详情（管理端/商家端）
// restaurantID 非零时校验订单归属
func (s *OrderService) GetOrder(orderID, restaurantID uint) (*models.Order, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if restaurantID != 0 && order.RestaurantID != restaurantID {
		return nil, ErrForbidden
	}
	return order, nil
}

// UpdateStatus 更新订单状态（管理端/商家端）
func (s *OrderService) UpdateStatus(orderID, restaurantID uint, toStatus string) (*models.Order, error) {
	order, err := s.GetOrder(orderID, restaurantID)
	if err != nil {
		return nil, err
	}

	normalized := NormalizeOrderStatus(toStatus)
	if normalized == "" {
		return nil, ErrOrderStatusInvalid
	}
	return s.transition(order, normalized)
}

func (s *OrderService) transition(order *models.Order, toStatus string) (*models.Order, error) {
	fromStatus := order.Status
	if !CanTransitionOrderStatus(fromStatus, toStatus) {
		return nil, ErrOrderStatusInvalid
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if err := s.orderRepo.UpdateStatus(order.ID, toStatus, updates); err != nil {
		return nil, err
	}
	order.Status = toStatus

	if s.queueClient != nil {
		if err := s.queueClient.EnqueueOrderStatusChanged(queue.OrderStatusChangedPayload{
			OrderID:    order.ID,
			FromStatus: fromStatus,
			ToStatus:   toStatus,
		}); err != nil {
			logger.Warnw("order_status_notify_enqueue_failed",
				"order_id", order.ID,
				"from_status", fromStatus,
				"to_status", toStatus,
				"error", err,
			)
		}
	}

	logger.Infow("order_status_changed",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"from_status", fromStatus,
		"to_status", toStatus,
	)
	return order, nil
}
