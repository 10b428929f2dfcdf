package associate

import (
	handlershared "github.com/techfood-api/internal/http/handlers/shared"
	"github.com/techfood-api/internal/http/response"
	"github.com/techfood-api/internal/i18n"

	"github.com/gin-gonic/gin"
)

// getRestaurantID 从上下文取商家绑定的餐厅 ID
func getRestaurantID(c *gin.Context) (uint, bool) {
	restaurantID, ok := handlershared.GetContextUint(c, "restaurant_id")
	if !ok {
		return 0, false
	}
	if restaurantID == 0 {
		response.Forbidden(c, i18n.T(i18n.ResolveLocale(c), "error.forbidden"))
		return 0, false
	}
	return restaurantID, true
}
