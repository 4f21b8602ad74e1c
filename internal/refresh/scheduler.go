package refresh

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopdash-lab/shopdash/internal/dashboard"
)

// Refresher recomputes the dashboard for its current selection.
type Refresher interface {
	Refresh(ctx context.Context) (*dashboard.Snapshot, error)
}

// Scheduler refreshes the dashboard on a fixed interval so new sales and
// orders show up without an operator action.
type Scheduler struct {
	interval time.Duration
	board    Refresher
}

func NewScheduler(interval time.Duration, board Refresher) *Scheduler {
	return &Scheduler{interval: interval, board: board}
}

// Start refreshes once immediately, then on every tick.
// Runs until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Refresher] Starting dashboard refresher", "interval", s.interval)

	s.refresh(ctx)

	for {
		select {
		case <-ticker.C:
			s.refresh(ctx)
		case <-ctx.Done():
			slog.Info("[Refresher] Stopping (context cancelled)")
			return nil
		}
	}
}

func (s *Scheduler) refresh(ctx context.Context) {
	start := time.Now()
	snap, err := s.board.Refresh(ctx)
	switch {
	case err == nil:
		slog.Debug("[Refresher] Dashboard refreshed",
			"generation", snap.Generation,
			"sales_granularity", snap.SalesGranularity,
			"orders_granularity", snap.OrdersGranularity,
			"degraded", snap.Degraded,
			"duration", time.Since(start))
	case errors.Is(err, dashboard.ErrSuperseded):
		// An operator selection landed mid-refresh and already committed newer data.
		slog.Debug("[Refresher] Refresh superseded")
	case ctx.Err() != nil:
		// Shutdown in progress.
	default:
		slog.Error("[Refresher] Refresh failed", "error", err)
	}
}
