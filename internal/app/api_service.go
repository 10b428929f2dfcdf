package app

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// APIService 对外 REST 接口服务，承载下单与后台管理流量。
type APIService struct {
	server *http.Server
}

// NewAPIService 基于路由 handler 构建 API 服务
func NewAPIService(addr string, handler http.Handler) *APIService {
	return &APIService{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Name 服务名称
func (s *APIService) Name() string {
	return "api"
}

// Start 监听端口直至被关停；正常关停不视为错误。
func (s *APIService) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("api server not initialized")
	}
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop 优雅关停，等待在途请求完成
func (s *APIService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
