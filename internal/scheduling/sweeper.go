package scheduling

import (
	"context"
	"log/slog"
	"time"

	"roost/internal/config"
	"roost/internal/syncing"
)

// Sweeper periodically runs a full-catalog sweep. It is the background
// trigger of the engine; the on-demand path calls the same Sync operation.
type Sweeper struct {
	Logger *slog.Logger
	Config *config.Config
	Syncer *syncing.Syncer
}

func (s *Sweeper) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "scheduling.Sweeper")
	return nil
}

func (s *Sweeper) Run(ctx context.Context) error {
	interval := time.Duration(s.Config.ScanIntervalHours) * time.Hour
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	s.Logger.Info("background sweep scheduled", "interval", interval)

	s.sweep(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	if _, err := s.Syncer.Sweep(ctx, false); err != nil {
		s.Logger.Error("background sweep failed", "error", err)
	}
}
