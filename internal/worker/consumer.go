package worker

import (
	"context"
	"encoding/json"

	"github.com/techfood-api/internal/logger"
	"github.com/techfood-api/internal/provider"
	"github.com/techfood-api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderPlaced)
	mux.HandleFunc(queue.TaskOrderStatusChanged, c.handleOrderStatusChanged)
}

// handleOrderPlaced 新订单通知：记录待商家处理的订单
func (c *Consumer) handleOrderPlaced(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderPlacedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_placed_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_placed_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_placed_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	logger.Infow("worker_order_placed_notified",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"restaurant_id", order.RestaurantID,
		"total", order.Total.String(),
		"item_count", len(order.Items),
	)
	return nil
}

// handleOrderStatusChanged 状态变更通知：通知下单用户
func (c *Consumer) handleOrderStatusChanged(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderStatusChangedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	user, err := c.UserRepo.GetByID(order.UserID)
	if err != nil {
		logger.Warnw("worker_order_status_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
		return err
	}
	receiver := ""
	if user != nil {
		receiver = user.Email
	}

	logger.Infow("worker_order_status_notified",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"receiver", receiver,
		"from_status", payload.FromStatus,
		"to_status", payload.ToStatus,
	)
	return nil
}
