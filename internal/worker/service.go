package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/salon-next/internal/config"
	"github.com/salon-next/internal/logger"
	"github.com/salon-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 托管 asynq 消费端与活动窗口巡检
type Service struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	watcher *PromotionWatcher

	stopOnce sync.Once
}

// NewService 队列关闭时返回错误，调用方据此跳过 worker
func NewService(cfg *config.QueueConfig, consumer *Consumer, watcher *PromotionWatcher) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	redisOpt, serverCfg := queue.BuildServerConfig(cfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		server:  asynq.NewServer(redisOpt, serverCfg),
		mux:     mux,
		watcher: watcher,
	}, nil
}

func (s *Service) Name() string { return "worker" }

// Start 启动消费后阻塞到 ctx 结束；asynq 自身不接管进程信号
func (s *Service) Start(ctx context.Context) error {
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	if s.watcher != nil {
		go s.watcher.Run(ctx)
	}
	<-ctx.Done()
	return nil
}

// Stop 等待进行中的任务结束；asynq 的 Shutdown 只能调用一次
func (s *Service) Stop(context.Context) error {
	s.stopOnce.Do(func() {
		s.server.Shutdown()
		logger.Infow("worker_stopped")
	})
	return nil
}
