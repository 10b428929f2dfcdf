package public

import (
	handlershared "github.com/techfood-api/internal/http/handlers/shared"
	"github.com/techfood-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "user_id")
}

// getCartSession 读取购物车会话标识，由会话中间件写入
func getCartSession(c *gin.Context) (string, bool) {
	sessionID, ok := handlershared.GetContextString(c, "cart_session_id")
	if !ok {
		respondError(c, response.CodeInternal, "error.internal", nil)
		return "", false
	}
	return sessionID, true
}
