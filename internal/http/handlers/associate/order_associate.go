package associate

import (
	"errors"
	"strconv"

	handlershared "github.com/techfood-api/internal/http/handlers/shared"
	"github.com/techfood-api/internal/http/response"
	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/repository"
	"github.com/techfood-api/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 订单状态更新请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemView 商家端订单项响应
type OrderItemView struct {
	MenuItemID   uint         `json:"menu_item_id"`
	Name         string       `json:"name"`
	Quantity     int          `json:"quantity"`
	UnitPrice    models.Money `json:"unit_price"`
	Subtotal     models.Money `json:"subtotal"`
	SpecialNotes string       `json:"special_notes,omitempty"`
}

// OrderView 商家端订单响应
type OrderView struct {
	ID             uint            `json:"id"`
	OrderNo        string          `json:"order_no"`
	Status         string          `json:"status"`
	Total          models.Money    `json:"total"`
	RecipientName  string          `json:"recipient_name"`
	RecipientPhone string          `json:"recipient_phone"`
	Address        string          `json:"address"`
	Notes          string          `json:"notes,omitempty"`
	OrderedAt      string          `json:"ordered_at"`
	Items          []OrderItemView `json:"items"`
}

func buildOrderView(order *models.Order) OrderView {
	items := make([]OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemView{
			MenuItemID:   item.MenuItemID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Subtotal:     item.Subtotal,
			SpecialNotes: item.SpecialNotes,
		})
	}
	return OrderView{
		ID:             order.ID,
		OrderNo:        order.OrderNo,
		Status:         order.Status,
		Total:          order.Total,
		RecipientName:  order.RecipientName,
		RecipientPhone: order.RecipientPhone,
		Address:        order.Address,
		Notes:          order.Notes,
		OrderedAt:      order.OrderedAt.Format("2006-01-02 15:04:05"),
		Items:          items,
	}
}

// ListOrders 本餐厅订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	restaurantID, ok := getRestaurantID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListRestaurantOrders(restaurantID, repository.OrderListFilter{
		Status:   c.Query("status"),
		OrderNo:  c.Query("order_no"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, buildOrderView(&orders[i]))
	}
	response.SuccessWithPage(c, views, response.NewPagination(page, pageSize, total))
}

// GetOrder 本餐厅订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	restaurantID, ok := getRestaurantID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.GetOrder(uint(orderID), restaurantID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, buildOrderView(order))
}

// UpdateOrderStatus 推进本餐厅订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	restaurantID, ok := getRestaurantID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	order, err := h.OrderService.UpdateStatus(uint(orderID), restaurantID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.order_status_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, buildOrderView(order))
}
