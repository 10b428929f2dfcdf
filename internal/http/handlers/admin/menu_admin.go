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

// MenuItemRequest 菜品创建/更新请求
type MenuItemRequest struct {
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	ImageURL     string `json:"image_url"`
	IsAvailable  *bool  `json:"is_available"`
}

// AdminMenuItemView 后台菜品响应
type AdminMenuItemView struct {
	ID           uint         `json:"id"`
	RestaurantID uint         `json:"restaurant_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Price        models.Money `json:"price"`
	ImageURL     string       `json:"image_url,omitempty"`
	IsAvailable  bool         `json:"is_available"`
}

func buildAdminMenuItemView(item *models.MenuItem) AdminMenuItemView {
	return AdminMenuItemView{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		ImageURL:     item.ImageURL,
		IsAvailable:  item.IsAvailable,
	}
}

// ListMenuItems 菜品列表
func (h *Handler) ListMenuItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)
	restaurantID, _ := strconv.ParseUint(c.Query("restaurant_id"), 10, 32)

	items, total, err := h.MenuService.List(repository.MenuItemListFilter{
		RestaurantID: uint(restaurantID),
		Search:       c.Query("search"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	views := make([]AdminMenuItemView, 0, len(items))
	for i := range items {
		views = append(views, buildAdminMenuItemView(&items[i]))
	}
	response.SuccessWithPage(c, views, response.NewPagination(page, pageSize, total))
}

// CreateMenuItem 创建菜品
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	item, err := h.MenuService.Create(service.MenuItemInput{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsAvailable:  req.IsAvailable,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
			return
		}
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	response.Success(c, buildAdminMenuItemView(item))
}

// UpdateMenuItem 更新菜品
func (h *Handler) UpdateMenuItem(c *gin.Context) {
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

	item, err := h.MenuService.Update(uint(itemID), 0, service.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.menu_item_not_found", nil)
			return
		}
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	response.Success(c, buildAdminMenuItemView(item))
}

// DeleteMenuItem 删除菜品
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.MenuService.Delete(uint(itemID), 0); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.menu_item_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, nil)
}
