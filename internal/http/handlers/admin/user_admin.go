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

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	Role         string `json:"role" binding:"required"`
	RestaurantID *uint  `json:"restaurant_id"`
}

// SetUserStatusRequest 用户状态请求
type SetUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AssignRestaurantRequest 绑定餐厅请求
type AssignRestaurantRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

// AdminUserView 后台用户响应
type AdminUserView struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	RestaurantID *uint  `json:"restaurant_id,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func buildAdminUserView(user *models.User) AdminUserView {
	return AdminUserView{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Phone:        user.Phone,
		Role:         user.Role,
		Status:       user.Status,
		RestaurantID: user.RestaurantID,
		CreatedAt:    user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ListUsers 用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	users, total, err := h.UserService.List(repository.UserListFilter{
		Keyword:  c.Query("keyword"),
		Role:     c.Query("role"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	views := make([]AdminUserView, 0, len(users))
	for i := range users {
		views = append(views, buildAdminUserView(&users[i]))
	}
	response.SuccessWithPage(c, views, response.NewPagination(page, pageSize, total))
}

// CreateUser 创建用户（管理员/商家/客户）
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	user, err := h.UserService.Create(service.CreateUserInput{
		Email:        req.Email,
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         req.Role,
		RestaurantID: req.RestaurantID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeConflict, "error.email_taken", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.email_invalid", nil)
		case errors.Is(err, service.ErrPasswordTooWeak):
			respondError(c, response.CodeBadRequest, "error.password_too_weak", nil)
		default:
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
		}
		return
	}
	response.Success(c, buildAdminUserView(user))
}

// SetUserStatus 启用/禁用用户
func (h *Handler) SetUserStatus(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || userID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.UserService.SetStatus(uint(userID), req.Status); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, nil)
}

// AssignUserRestaurant 绑定商家用户的餐厅
func (h *Handler) AssignUserRestaurant(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || userID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req AssignRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	user, err := h.UserService.AssignRestaurant(uint(userID), req.RestaurantID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.not_found", nil)
		case errors.Is(err, service.ErrForbidden):
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, buildAdminUserView(user))
}
