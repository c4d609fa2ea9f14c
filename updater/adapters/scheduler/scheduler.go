package scheduler

import (
	"click-updater/updater/core"
	"context"
	"errors"
	"log/slog"
	"time"
)

const defaultRetryDelay = time.Second

// CheckScheduler starts an update check every interval unless the last one
// is still recent. The first tick is repeated every retryDelay until the
// updater is running.
type CheckScheduler struct {
	log        *slog.Logger
	updater    core.Updater
	interval   time.Duration
	retryDelay time.Duration
}

func NewCheckScheduler(log *slog.Logger, updater core.Updater, interval time.Duration) *CheckScheduler {
	return &CheckScheduler{
		log:        log,
		updater:    updater,
		interval:   interval,
		retryDelay: defaultRetryDelay,
	}
}

func (s *CheckScheduler) WithRetryDelay(delay time.Duration) *CheckScheduler {
	s.retryDelay = delay
	return s
}

func (s *CheckScheduler) Start(ctx context.Context) {
	s.log.Info("start check scheduler", "interval", s.interval)
	go func() {
		for !s.tick(ctx) {
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				s.log.Info("check scheduler stopped")
				return
			}
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.tick(ctx)
			case <-ctx.Done():
				s.log.Info("check scheduler stopped")
				return
			}
		}
	}()
}

// tick reports false when the updater is not running yet.
func (s *CheckScheduler) tick(ctx context.Context) bool {
	required, err := s.updater.IsCheckRequired(ctx)
	if err != nil {
		s.log.Error("failed to get check throttle", "error", err)
		return true
	}
	if !required {
		s.log.Debug("skipping scheduled check, last one is recent")
		return true
	}
	switch err := s.updater.Check(ctx); {
	case err == nil:
		s.log.Debug("scheduled check started")
	case errors.Is(err, core.ErrAlreadyExists):
		s.log.Debug("check already running")
	case errors.Is(err, core.ErrServiceUnavailable):
		s.log.Debug("updater not running yet, retrying", "delay", s.retryDelay)
		return false
	case errors.Is(err, context.Canceled):
	default:
		s.log.Error("failed to start scheduled check", "error", err)
	}
	return true
}
