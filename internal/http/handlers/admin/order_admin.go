package admin

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

// AdminOrderItemView 后台订单项响应
type AdminOrderItemView struct {
	MenuItemID   uint         `json:"menu_item_id"`
	Name         string       `json:"name"`
	Quantity     int          `json:"quantity"`
	UnitPrice    models.Money `json:"unit_price"`
	Subtotal     models.Money `json:"subtotal"`
	SpecialNotes string       `json:"special_notes,omitempty"`
}

// AdminOrderView 后台订单响应
type AdminOrderView struct {
	ID             uint                 `json:"id"`
	OrderNo        string               `json:"order_no"`
	UserID         uint                 `json:"user_id"`
	RestaurantID   uint                 `json:"restaurant_id"`
	RestaurantName string               `json:"restaurant_name,omitempty"`
	Status         string               `json:"status"`
	Total          models.Money         `json:"total"`
	RecipientName  string               `json:"recipient_name"`
	RecipientPhone string               `json:"recipient_phone"`
	Address        string               `json:"address"`
	Notes          string               `json:"notes,omitempty"`
	OrderedAt      string               `json:"ordered_at"`
	Items          []AdminOrderItemView `json:"items"`
}

func buildAdminOrderView(order *models.Order) AdminOrderView {
	items := make([]AdminOrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, AdminOrderItemView{
			MenuItemID:   item.MenuItemID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Subtotal:     item.Subtotal,
			SpecialNotes: item.SpecialNotes,
		})
	}
	restaurantName := ""
	if order.Restaurant != nil {
		restaurantName = order.Restaurant.Name
	}
	return AdminOrderView{
		ID:             order.ID,
		OrderNo:        order.OrderNo,
		UserID:         order.UserID,
		RestaurantID:   order.RestaurantID,
		RestaurantName: restaurantName,
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

// ListOrders 订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 32)
	restaurantID, _ := strconv.ParseUint(c.Query("restaurant_id"), 10, 32)

	orders, total, err := h.OrderService.ListAllOrders(repository.OrderListFilter{
		UserID:       uint(userID),
		RestaurantID: uint(restaurantID),
		Status:       c.Query("status"),
		OrderNo:      c.Query("order_no"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	views := make([]AdminOrderView, 0, len(orders))
	for i := range orders {
		views = append(views, buildAdminOrderView(&orders[i]))
	}
	response.SuccessWithPage(c, views, response.NewPagination(page, pageSize, total))
}

// GetOrder 获取订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.GetOrder(uint(orderID), 0)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, buildAdminOrderView(order))
}

// UpdateOrderStatus 更新订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
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

	order, err := h.OrderService.UpdateStatus(uint(orderID), 0, req.Status)
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
	response.Success(c, buildAdminOrderView(order))
}
