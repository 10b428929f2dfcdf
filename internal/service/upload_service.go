package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/techfood-api/internal/config"

	"github.com/google/uuid"
)

var allowedUploadScenes = map[string]struct{}{
	"restaurant": {},
	"menu":       {},
	"common":     {},
}

// UploadService 文件上传服务，餐厅 Logo 与菜品图片
type UploadService struct {
	cfg *config.Config
}

// NewUploadService 创建文件上传服务
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// SaveFile 保存上传文件，返回可访问的相对路径
func (s *UploadService) SaveFile(file *multipart.FileHeader, scene string) (string, error) {
	if file == nil {
		return "", ErrUploadInvalid
	}
	if s.cfg.Upload.MaxSize > 0 && file.Size > s.cfg.Upload.MaxSize {
		return "", fmt.Errorf("%w: size %d exceeds limit", ErrUploadInvalid, file.Size)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.Upload.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.Upload.AllowedExtensions) {
			return "", fmt.Errorf("%w: extension %s", ErrUploadInvalid, ext)
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// 读取文件头识别真实 MIME 类型
	buffer := make([]byte, 512)
	if _, err := src.Read(buffer); err != nil && err != io.EOF {
		return "", err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", err
	}
	contentType := http.DetectContentType(buffer)
	if len(s.cfg.Upload.AllowedTypes) > 0 && !isAllowedContentType(contentType, s.cfg.Upload.AllowedTypes) {
		return "", fmt.Errorf("%w: content type %s", ErrUploadInvalid, contentType)
	}

	normalizedScene := normalizeUploadScene(scene)
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	now := time.Now()
	year := now.Format("2006")
	month := now.Format("01")

	uploadDir := strings.TrimSpace(s.cfg.Upload.Dir)
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	savePath := filepath.Join(uploadDir, normalizedScene, year, month, filename)
	if err := os.MkdirAll(filepath.Dir(savePath), 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("/uploads/%s/%s/%s/%s", normalizedScene, year, month, filename), nil
}

func normalizeUploadScene(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := allowedUploadScenes[value]; ok {
		return value
	}
	return "common"
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if strings.EqualFold(ext, normalized) {
			return true
		}
	}
	return false
}

func isAllowedContentType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(contentType, strings.TrimSpace(t)) {
			return true
		}
	}
	return false
}
