package public

import (
	"errors"

	"github.com/techfood-api/internal/http/response"
	"github.com/techfood-api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrRestaurantMismatch, code: response.CodeConflict, key: "error.cart_restaurant_mismatch"},
	{target: service.ErrCartItemInvalid, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrMenuItemNotAvailable, code: response.CodeBadRequest, key: "error.menu_item_not_available"},
	{target: service.ErrCartStoreUnavailable, code: response.CodeUnavailable, key: "error.cart_store_unavailable"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrInvalidDeliveryDetails, code: response.CodeBadRequest, key: "error.delivery_details_invalid"},
	{target: service.ErrCartStoreUnavailable, code: response.CodeUnavailable, key: "error.cart_store_unavailable"},
	{target: service.ErrOrderPersistFailed, code: response.CodeInternal, key: "error.order_persist_failed"},
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrPasswordTooWeak, code: response.CodeBadRequest, key: "error.password_too_weak"},
	{target: service.ErrEmailExists, code: response.CodeConflict, key: "error.email_taken"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.login_failed"},
	{target: service.ErrUserDisabled, code: response.CodeForbidden, key: "error.user_disabled"},
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, key: "error.captcha_required"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, key: "error.captcha_invalid"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
}

func respondAuthError(c *gin.Context, err error) {
	respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "error.internal")
}
