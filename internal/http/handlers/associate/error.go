package associate

import (
	handlershared "github.com/techfood-api/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, messageKey string, err error) {
	handlershared.RespondError(c, code, messageKey, err)
}
