package service

import (
	"strings"

	"github.com/techfood-api/internal/constants"
)

// orderStatusTransitions 订单状态流转表
// 配送完成与取消为终态
var orderStatusTransitions = map[string][]string{
	constants.OrderStatusPending:   {constants.OrderStatusPreparing, constants.OrderStatusCancelled},
	constants.OrderStatusPreparing: {constants.OrderStatusEnRoute, constants.OrderStatusCancelled},
	constants.OrderStatusEnRoute:   {constants.OrderStatusDelivered, constants.OrderStatusCancelled},
	constants.OrderStatusDelivered: {},
	constants.OrderStatusCancelled: {},
}

// NormalizeOrderStatus 规范化订单状态值，未知状态返回空串
func NormalizeOrderStatus(status string) string {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if _, ok := orderStatusTransitions[normalized]; !ok {
		return ""
	}
	return normalized
}

// CanTransitionOrderStatus 判断状态流转是否合法
func CanTransitionOrderStatus(from, to string) bool {
	fromStatus := NormalizeOrderStatus(from)
	toStatus := NormalizeOrderStatus(to)
	if fromStatus == "" || toStatus == "" {
		return false
	}
	for _, allowed := range orderStatusTransitions[fromStatus] {
		if allowed == toStatus {
			return true
		}
	}
	return false
}

// IsTerminalOrderStatus 判断是否终态
func IsTerminalOrderStatus(status string) bool {
	normalized := NormalizeOrderStatus(status)
	if normalized == "" {
		return false
	}
	return len(orderStatusTransitions[normalized]) == 0
}
