package admin

import (
	"errors"

	"github.com/techfood-api/internal/http/response"
	"github.com/techfood-api/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadFile 上传图片（餐厅/菜品）
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.upload_no_file", err)
		return
	}
	scene := c.DefaultPostForm("scene", "common")

	path, err := h.UploadService.SaveFile(file, scene)
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
