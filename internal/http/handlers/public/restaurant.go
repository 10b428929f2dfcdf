package public

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

// RestaurantView 餐厅响应
type RestaurantView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}

// MenuItemView 菜品响应
type MenuItemView struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       models.Money `json:"price"`
	ImageURL    string       `json:"image_url,omitempty"`
	IsAvailable bool         `json:"is_available"`
}

// RestaurantMenuView 餐厅与菜单响应
type RestaurantMenuView struct {
	RestaurantView
	MenuItems []MenuItemView `json:"menu_items"`
}

func buildRestaurantView(r *models.Restaurant) RestaurantView {
	return RestaurantView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		LogoURL:     r.LogoURL,
	}
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

// ListRestaurants 餐厅列表，支持名称搜索
func (h *Handler) ListRestaurants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	restaurants, total, err := h.RestaurantService.List(repository.RestaurantListFilter{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	views := make([]RestaurantView, 0, len(restaurants))
	for i := range restaurants {
		views = append(views, buildRestaurantView(&restaurants[i]))
	}
	response.SuccessWithPage(c, views, response.NewPagination(page, pageSize, total))
}

// GetRestaurantMenu 获取餐厅及在售菜单
func (h *Handler) GetRestaurantMenu(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || restaurantID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	restaurant, err := h.RestaurantService.GetMenu(c.Request.Context(), uint(restaurantID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	view := RestaurantMenuView{
		RestaurantView: buildRestaurantView(restaurant),
		MenuItems:      make([]MenuItemView, 0, len(restaurant.MenuItems)),
	}
	for i := range restaurant.MenuItems {
		view.MenuItems = append(view.MenuItems, buildMenuItemView(&restaurant.MenuItems[i]))
	}
	response.Success(c, view)
}
