package runner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/config"
)

//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=runner

type Dispatcher interface {
	Dispatch(ctx context.Context, orderID *int64) (int, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context) (int, error)
}

// Service drives dispatch and reconciliation on a fixed interval. With a zero
// interval the runner stays off and the HTTP triggers are the only drivers.
type Service struct {
	interval   time.Duration
	dispatcher Dispatcher
	reconciler Reconciler
}

func New(cfg *config.Config, dispatcher Dispatcher, reconciler Reconciler) *Service {
	return &Service{
		interval:   cfg.RunnerInterval,
		dispatcher: dispatcher,
		reconciler: reconciler,
	}
}

func (s *Service) Start(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("interval runner disabled")
		return
	}
	zap.L().Info("interval runner started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping runner")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Service) runOnce(ctx context.Context) {
	if n, err := s.dispatcher.Dispatch(ctx, nil); err != nil {
		zap.L().Error("scheduled dispatch failed", zap.Error(err))
	} else if n > 0 {
		zap.L().Info("scheduled dispatch done", zap.Int("processed", n))
	}

	if n, err := s.reconciler.Reconcile(ctx); err != nil {
		zap.L().Error("scheduled reconciliation failed", zap.Error(err))
	} else if n > 0 {
		zap.L().Info("scheduled reconciliation done", zap.Int("processed", n))
	}
}
