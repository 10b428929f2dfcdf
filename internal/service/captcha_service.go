package service

import (
	"strings"
	"sync"
	"time"

	"github.com/techfood-api/internal/config"

	"github.com/mojocn/base64Captcha"
)

// CaptchaChallenge 图片验证码挑战
type CaptchaChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService 登录图片验证码服务
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu    sync.Mutex
	store base64Captcha.Store
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// Enabled 判断是否启用验证码
func (s *CaptchaService) Enabled() bool {
	return s != nil && s.cfg.Enabled
}

// Generate 生成图片验证码
func (s *CaptchaService) Generate() (*CaptchaChallenge, error) {
	driver := base64Captcha.NewDriverString(
		normalizeCaptchaInt(s.cfg.Height, 40),
		normalizeCaptchaInt(s.cfg.Width, 120),
		normalizeCaptchaInt(s.cfg.NoiseCount, 2),
		base64Captcha.OptionShowHollowLine,
		normalizeCaptchaInt(s.cfg.Length, 4),
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, s.ensureStore())
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify 校验验证码，未启用时直接通过
func (s *CaptchaService) Verify(captchaID, captchaCode string) error {
	if !s.Enabled() {
		return nil
	}
	id := strings.TrimSpace(captchaID)
	code := strings.TrimSpace(captchaCode)
	if id == "" || code == "" {
		return ErrCaptchaRequired
	}
	if !s.ensureStore().Verify(id, code, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		expire := time.Duration(normalizeCaptchaInt(s.cfg.ExpireSeconds, 300)) * time.Second
		s.store = base64Captcha.NewMemoryStore(base64Captcha.GCLimitNumber, expire)
	}
	return s.store
}

func normalizeCaptchaInt(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
