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

// RestaurantRequest 餐厅创建/更新请求
type RestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

// AdminRestaurantView 后台餐厅响应
type AdminRestaurantView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func buildAdminRestaurantView(r *models.Restaurant) AdminRestaurantView {
	return AdminRestaurantView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		LogoURL:     r.LogoURL,
		CreatedAt:   r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ListRestaurants 餐厅列表
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
	views := make([]AdminRestaurantView, 0, len(restaurants))
	for i := range restaurants {
		views = append(views, buildAdminRestaurantView(&restaurants[i]))
	}
	response.SuccessWithPage(c, views, response.NewPagination(page, pageSize, total))
}

// CreateRestaurant 创建餐厅
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	restaurant, err := h.RestaurantService.Create(service.RestaurantInput{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	response.Success(c, buildAdminRestaurantView(restaurant))
}

// UpdateRestaurant 更新餐厅
func (h *Handler) UpdateRestaurant(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || restaurantID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	restaurant, err := h.RestaurantService.Update(uint(restaurantID), service.RestaurantInput{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, buildAdminRestaurantView(restaurant))
}

// DeleteRestaurant 删除餐厅
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || restaurantID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.RestaurantService.Delete(uint(restaurantID)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, nil)
}
