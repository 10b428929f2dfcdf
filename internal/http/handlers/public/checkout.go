package public

import (
	"errors"

	"github.com/techfood-api/internal/http/response"
	"github.com/techfood-api/internal/i18n"
	"github.com/techfood-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	Address        string `json:"address"`
	Notes          string `json:"notes"`
}

// Checkout 从购物车创建订单
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	sessionID, ok := getCartSession(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.CheckoutService.Checkout(c.Request.Context(), service.CheckoutInput{
		SessionID:      sessionID,
		UserID:         uid,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		Address:        req.Address,
		Notes:          req.Notes,
	})
	if err != nil {
		var detailsErr *service.InvalidDeliveryDetailsError
		if errors.As(err, &detailsErr) {
			respondErrorWithData(c, response.CodeBadRequest, "error.delivery_details_invalid", gin.H{
				"missing_fields": detailsErr.Fields,
			}, nil)
			return
		}
		respondCheckoutError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.order_placed"), buildOrderView(order))
}
