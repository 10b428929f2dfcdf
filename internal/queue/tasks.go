package queue

import (
	"encoding/json"

	"github.com/techfood-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlaced 新订单通知任务
	TaskOrderPlaced = constants.TaskOrderPlaced
	// TaskOrderStatusChanged 订单状态变更通知任务
	TaskOrderStatusChanged = constants.TaskOrderStatusChanged
)

// OrderPlacedPayload 新订单任务载荷
type OrderPlacedPayload struct {
	OrderID uint `json:"order_id"`
}

// OrderStatusChangedPayload 状态变更任务载荷
type OrderStatusChangedPayload struct {
	OrderID    uint   `json:"order_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
}

// NewOrderPlacedTask 创建新订单通知任务
func NewOrderPlacedTask(payload OrderPlacedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlaced, body), nil
}

// NewOrderStatusChangedTask 创建状态变更通知任务
func NewOrderStatusChangedTask(payload OrderStatusChangedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusChanged, body), nil
}
