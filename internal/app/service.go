package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// Service 可托管的长驻子服务（API 服务、订单通知 worker）。
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 托管一组子服务，任一退出即触发整体关停。
type Runner struct {
	services []Service
}

// NewRunner 创建 Runner
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// RunWithOptions 挂接系统信号后运行全部子服务
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = withDefaults(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 并行启动子服务，在信号或首个退出后统一关停。
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exitCh := make(chan error, len(r.services))
	for _, svc := range r.services {
		svc := svc
		go func() {
			if svc == nil {
				exitCh <- errors.New("service is nil")
				return
			}
			if log != nil {
				log.Infow("service_start", "service", svc.Name())
			}
			exitCh <- svc.Start(ctx)
			if log != nil {
				log.Infow("service_exit", "service", svc.Name())
			}
		}()
	}

	var cause error
	select {
	case <-ctx.Done():
		cause = ctx.Err()
	case err := <-exitCh:
		cause = err
	}
	cancel()

	r.stopAll(stopTimeout, log)

	// 信号触发的取消属于正常关停
	if errors.Is(cause, context.Canceled) {
		return nil
	}
	return cause
}

func (r *Runner) stopAll(stopTimeout time.Duration, log *zap.SugaredLogger) {
	if stopTimeout <= 0 {
		stopTimeout = 15 * time.Second
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	for _, svc := range r.services {
		if svc == nil {
			continue
		}
		if err := svc.Stop(stopCtx); err != nil {
			if log != nil {
				log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
			}
		}
	}
}
