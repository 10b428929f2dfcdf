package associate

import (
	"errors"

	"github.com/techfood-api/internal/http/response"
	"github.com/techfood-api/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadFile 商家上传菜品图片
func (h *Handler) UploadFile(c *gin.Context) {
	if _, ok := getRestaurantID(c); !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.upload_no_file", err)
		return
	}

	path, err := h.UploadService.SaveFile(file, "menu")
	if err != nil {
		if errors.Is(err, service.ErrUploadInvalid) {
			respondError(c, response.CodeBadRequest, "error.upload_invalid", err)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"url": path})
}
