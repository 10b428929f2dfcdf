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

// MenuItemRequest 菜品创建/更新请求
type MenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	IsAvailable *bool  `json:"is_available"`
}

// SetAvailabilityRequest 菜品上下架请求
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// MenuItemView 商家端菜品响应
type MenuItemView struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       models.Money `json:"price"`
	ImageURL    string       `json:"image_url,omitempty"`
	IsAvailable bool         `json:"is_available"`
}

func buildMenuItemView(item *models.MenuItem) MenuItemView {
	return MenuItemView{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		IsAvailable: item.IsAvailable,
	}
}

// ListMenuItems 本餐厅菜品列表
func (h *Handler) ListMenuItems(c *gin.Context) {
	restaurantID, ok := getRestaurantID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	items, total, err := h.MenuService.List(repository.MenuItemListFilter{
		RestaurantID: restaurantID,
		Search:       c.Query("search"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	views := make([]MenuItemView, 0, len(items))
	for i := range items {
		views = append(views, buildMenuItemView(&items[i]))
	}
	response.SuccessWithPage(c, views, response.NewPagination(page, pageSize, total))
}

// CreateMenuItem 在本餐厅创建菜品
func (h *Handler) CreateMenuItem(c *gin.Context) {
	restaurantID, ok := getRestaurantID(c)
	if !ok {
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	item, err := h.MenuService.Create(service.MenuItemInput{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsAvailable:  req.IsAvailable,
	})
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	response.Success(c, buildMenuItemView(item))
}

// UpdateMenuItem 更新本餐厅菜品
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	restaurantID, ok := getRestaurantID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	item, err := h.MenuService.Update(uint(itemID), restaurantID, service.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		respondMenuError(c, err)
		return
	}
	response.Success(c, buildMenuItemView(item))
}

// SetMenuItemAvailability 上下架本餐厅菜品
func (h *Handler) SetMenuItemAvailability(c *gin.Context) {
	restaurantID, ok := getRestaurantID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	item, err := h.MenuService.SetAvailability(uint(itemID), restaurantID, *req.IsAvailable)
	if err != nil {
		respondMenuError(c, err)
		return
	}
	response.Success(c, buildMenuItemView(item))
}

// DeleteMenuItem 删除本餐厅菜品
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	restaurantID, ok := getRestaurantID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.MenuService.Delete(uint(itemID), restaurantID); err != nil {
		respondMenuError(c, err)
		return
	}
	response.Success(c, nil)
}

func respondMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.menu_item_not_found", nil)
	case errors.Is(err, service.ErrForbidden):
		respondError(c, response.CodeForbidden, "error.forbidden", nil)
	default:
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
	}
}
