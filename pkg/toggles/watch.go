package toggles

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/nodetrace/pkg/domain"
)

// Source provides toggle values from outside the process.
type Source interface {
	Load(ctx context.Context) (domain.ToggleSet, error)
}

// Refresh loads src once and applies the result to reg.
func Refresh(ctx context.Context, src Source, reg *Registry) error {
	ts, err := src.Load(ctx)
	if err != nil {
		return err
	}
	reg.Apply(ts)
	return nil
}

// Watch polls src every interval and applies the result to reg until ctx is done.
// Load errors are logged and the current toggles are kept.
func Watch(ctx context.Context, src Source, reg *Registry, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := Refresh(ctx, src, reg); err != nil {
				logger.Warn("toggle refresh failed", "error", err)
			}
		}
	}
}
