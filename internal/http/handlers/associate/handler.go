package associate

import (
	"github.com/techfood-api/internal/provider"
)

// Handler 商家端处理器
type Handler struct {
	*provider.Container
}

// New 创建商家端处理器
func New(container *provider.Container) *Handler {
	return &Handler{Container: container}
}
