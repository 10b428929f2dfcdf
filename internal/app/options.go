package app

import (
	"os"
	"time"

	"github.com/techfood-api/internal/config"
	"github.com/techfood-api/internal/logger"

	"go.uber.org/zap"
)

// 运行模式：all 同进程跑 API 与订单通知 worker，api/worker 支持拆分部署。
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

// Options 进程启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

// withDefaults 填充缺省的日志器、关停超时与运行模式
func withDefaults(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 15 * time.Second
	}
	if opts.Mode == "" {
		opts.Mode = ModeAll
	}
	return opts
}
