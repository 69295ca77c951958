package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TokenCleanupWorker periodically purges revoked and expired refresh tokens
type TokenCleanupWorker struct {
	userRepo UserRepository
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewTokenCleanupWorker(userRepo UserRepository, interval time.Duration, logger *zap.Logger) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		userRepo: userRepo,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Start runs until ctx is cancelled
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("Token cleanup worker started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Token cleanup worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single purge
func (w *TokenCleanupWorker) RunOnce(ctx context.Context) {
	removed, err := w.userRepo.DeleteStaleRefreshTokens(ctx, w.now().UTC())
	if err != nil {
		w.logger.Error("Failed to purge refresh tokens", zap.Error(err))
		return
	}
	if removed > 0 {
		w.logger.Info("Purged refresh tokens", zap.Int64("count", removed))
	}
}
