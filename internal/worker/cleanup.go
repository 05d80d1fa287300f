// Package worker holds the background jobs that run beside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"riseup-backend/internal/domain"
	"riseup-backend/pkg/logger"
)

// AudioCleanup nulls stale audio payloads from chat messages. Text content
// is kept forever; only the base64 audio blobs age out.
type AudioCleanup struct {
	chatRepo  domain.ChatRepository
	retention time.Duration
	interval  time.Duration
}

func NewAudioCleanup(chatRepo domain.ChatRepository, retention, interval time.Duration) *AudioCleanup {
	return &AudioCleanup{
		chatRepo:  chatRepo,
		retention: retention,
		interval:  interval,
	}
}

// Run sweeps once immediately, then on every tick until the context is
// cancelled. Intended to be started as a goroutine from main.
func (w *AudioCleanup) Run(ctx context.Context) {
	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("audio cleanup stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *AudioCleanup) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-w.retention)

	cleared, err := w.chatRepo.ClearAudioBefore(ctx, cutoff)
	if err != nil {
		logger.Log.Error("audio cleanup sweep failed", slog.Any("error", err))
		return
	}
	if cleared > 0 {
		logger.Log.Info("cleared stale audio payloads",
			slog.Int64("messages", cleared),
			slog.Time("cutoff", cutoff),
		)
	}
}
