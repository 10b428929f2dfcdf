package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/techfood-api/internal/models"
)

// 业务错误定义，处理器通过 errors.Is 映射到响应码与 i18n 文案
var (
	// ErrRestaurantMismatch 购物车只能包含同一家餐厅的菜品
	ErrRestaurantMismatch = models.ErrRestaurantMismatch
	// ErrCartEmpty 购物车为空，无法结算
	ErrCartEmpty = errors.New("cart is empty")
	// ErrCartItemInvalid 购物车项参数非法
	ErrCartItemInvalid = errors.New("cart item is invalid")
	// ErrCartStoreUnavailable 购物车存储不可用
	ErrCartStoreUnavailable = errors.New("cart store unavailable")
	// ErrMenuItemNotAvailable 菜品不存在或已下架
	ErrMenuItemNotAvailable = errors.New("menu item not available")
	// ErrInvalidDeliveryDetails 配送信息不完整或非法
	ErrInvalidDeliveryDetails = errors.New("delivery details invalid")
	// ErrOrderPersistFailed 订单持久化失败，购物车保持不变
	ErrOrderPersistFailed = errors.New("order persist failed")
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusInvalid 订单状态流转非法
	ErrOrderStatusInvalid = errors.New("order status transition invalid")
	// ErrNotFound 资源不存在
	ErrNotFound = errors.New("resource not found")
	// ErrEmailExists 邮箱已被注册
	ErrEmailExists = errors.New("email already registered")
	// ErrInvalidEmail 邮箱格式非法
	ErrInvalidEmail = errors.New("email is invalid")
	// ErrInvalidCredentials 邮箱或密码错误
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserDisabled 用户已被禁用
	ErrUserDisabled = errors.New("user disabled")
	// ErrInvalidPassword 原密码错误
	ErrInvalidPassword = errors.New("password incorrect")
	// ErrPasswordTooWeak 密码不满足强度要求
	ErrPasswordTooWeak = errors.New("password too weak")
	// ErrCaptchaRequired 需要验证码
	ErrCaptchaRequired = errors.New("captcha required")
	// ErrCaptchaInvalid 验证码错误
	ErrCaptchaInvalid = errors.New("captcha invalid")
	// ErrUploadInvalid 上传文件不被允许
	ErrUploadInvalid = errors.New("upload file invalid")
	// ErrForbidden 无权访问该资源
	ErrForbidden = errors.New("forbidden")
)

// InvalidDeliveryDetailsError 配送信息校验失败详情
type InvalidDeliveryDetailsError struct {
	Fields []string
}

// NewInvalidDeliveryDetailsError 创建配送信息错误
func NewInvalidDeliveryDetailsError(fields ...string) *InvalidDeliveryDetailsError {
	return &InvalidDeliveryDetailsError{Fields: fields}
}

func (e *InvalidDeliveryDetailsError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalidDeliveryDetails.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidDeliveryDetails.Error(), strings.Join(e.Fields, ", "))
}

// Unwrap 支持 errors.Is(err, ErrInvalidDeliveryDetails)
func (e *InvalidDeliveryDetailsError) Unwrap() error {
	return ErrInvalidDeliveryDetails
}
