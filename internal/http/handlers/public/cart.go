package public

import (
	"strconv"

	"github.com/techfood-api/internal/http/response"
	"github.com/techfood-api/internal/i18n"
	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 添加购物车请求
type AddCartItemRequest struct {
	MenuItemID   uint   `json:"menu_item_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	SpecialNotes string `json:"special_notes"`
	// Replace 为 true 时清空购物车后再添加（用户确认切换餐厅）
	Replace bool `json:"replace"`
}

// UpdateCartItemRequest 更新购物车项请求
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartItemView 购物车项响应
type CartItemView struct {
	MenuItemID   uint         `json:"menu_item_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	UnitPrice    models.Money `json:"unit_price"`
	Quantity     int          `json:"quantity"`
	Subtotal     models.Money `json:"subtotal"`
	ImageURL     string       `json:"image_url,omitempty"`
	SpecialNotes string       `json:"special_notes,omitempty"`
}

// CartView 购物车响应
type CartView struct {
	RestaurantID   uint           `json:"restaurant_id"`
	RestaurantName string         `json:"restaurant_name,omitempty"`
	Items          []CartItemView `json:"items"`
	ItemCount      int            `json:"item_count"`
	Total          models.Money   `json:"total"`
}

func buildCartView(cart *models.Cart) CartView {
	items := make([]CartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemView{
			MenuItemID:   item.MenuItemID,
			Name:         item.Name,
			Description:  item.Description,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal(),
			ImageURL:     item.ImageURL,
			SpecialNotes: item.SpecialNotes,
		})
	}
	return CartView{
		RestaurantID:   cart.RestaurantID(),
		RestaurantName: cart.RestaurantName(),
		Items:          items,
		ItemCount:      cart.ItemCount(),
		Total:          cart.Total(),
	}
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getCartSession(c)
	if !ok {
		return
	}
	cart, err := h.CartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, buildCartView(cart))
}

// GetCartCount 获取购物车件数（导航栏角标）
func (h *Handler) GetCartCount(c *gin.Context) {
	sessionID, ok := getCartSession(c)
	if !ok {
		return
	}
	count, err := h.CartService.ItemCount(c.Request.Context(), sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}

// AddCartItem 添加菜品到购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getCartSession(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", err)
		return
	}

	input := service.AddToCartInput{
		SessionID:    sessionID,
		MenuItemID:   req.MenuItemID,
		Quantity:     req.Quantity,
		SpecialNotes: req.SpecialNotes,
	}

	var cart *models.Cart
	var err error
	if req.Replace {
		cart, err = h.CartService.ReplaceCart(c.Request.Context(), input)
	} else {
		cart, err = h.CartService.AddToCart(c.Request.Context(), input)
	}
	if err != nil {
		if service.IsRestaurantMismatch(err) {
			current, loadErr := h.CartService.GetCart(c.Request.Context(), sessionID)
			if loadErr == nil {
				respondErrorWithData(c, response.CodeConflict, "error.cart_restaurant_mismatch", gin.H{
					"current_restaurant_id":   current.RestaurantID(),
					"current_restaurant_name": current.RestaurantName(),
				}, nil)
				return
			}
		}
		respondCartError(c, err)
		return
	}
	response.Success(c, buildCartView(cart))
}

// UpdateCartItem 更新购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID, ok := getCartSession(c)
	if !ok {
		return
	}
	menuItemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || menuItemID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", err)
		return
	}

	cart, err := h.CartService.UpdateQuantity(c.Request.Context(), sessionID, uint(menuItemID), *req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, buildCartView(cart))
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	sessionID, ok := getCartSession(c)
	if !ok {
		return
	}
	menuItemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || menuItemID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}

	cart, err := h.CartService.RemoveFromCart(c.Request.Context(), sessionID, uint(menuItemID))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, buildCartView(cart))
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := getCartSession(c)
	if !ok {
		return
	}
	if err := h.CartService.ClearCart(c.Request.Context(), sessionID); err != nil {
		respondCartError(c, err)
		return
	}
	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.cart_cleared"), buildCartView(models.NewCart()))
}
