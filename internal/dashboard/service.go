package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopdash-lab/shopdash/internal/core/analytics"
	"github.com/shopdash-lab/shopdash/internal/core/storage"
	"golang.org/x/sync/errgroup"
)

const (
	streamSales  = "sales"
	streamOrders = "orders"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid dashboard query")

// Result is one computed pair of chart series.
type Result struct {
	SalesGranularity  analytics.Granularity `json:"sales_granularity"`
	OrdersGranularity analytics.Granularity `json:"orders_granularity"`
	GeneratedAt       time.Time             `json:"generated_at"`

	analytics.Series

	// Degraded names the streams whose read failed. Their series are
	// zero-filled rather than missing.
	Degraded []string `json:"degraded,omitempty"`
}

// Service reads sales and orders and runs them through the analytics engine.
// It holds no state between calls.
type Service struct {
	sales        storage.SalesReader
	orders       storage.OrdersReader
	loc          *time.Location
	fetchTimeout time.Duration
	nowFn        func() time.Time
}

// NewService creates a dashboard service computing in loc's civil calendar.
func NewService(
	sales storage.SalesReader,
	orders storage.OrdersReader,
	loc *time.Location,
	fetchTimeout time.Duration,
) *Service {
	return &Service{
		sales:        sales,
		orders:       orders,
		loc:          loc,
		fetchTimeout: fetchTimeout,
		nowFn:        time.Now,
	}
}

// Location returns the civil calendar the service computes in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Now returns the current time in the service's location.
func (s *Service) Now() time.Time {
	return s.nowFn().In(s.loc)
}

// ComputeSeries fetches both streams concurrently, waits for both, and
// aggregates them. A failed read never fails the call: the stream is
// aggregated as empty and listed in Result.Degraded. The only error is an
// invalid granularity, wrapping ErrInvalidQuery.
func (s *Service) ComputeSeries(ctx context.Context, salesG, ordersG analytics.Granularity) (*Result, error) {
	if !salesG.Valid() {
		return nil, invalidQueryf("invalid sales granularity %q (must be daily, weekly, monthly, or yearly)", salesG)
	}
	if !ordersG.Valid() {
		return nil, invalidQueryf("invalid orders granularity %q (must be daily, weekly, monthly, or yearly)", ordersG)
	}

	var (
		sales     []analytics.SaleEvent
		orders    []analytics.OrderEvent
		salesErr  error
		ordersErr error
		g         errgroup.Group
	)

	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
		sales, salesErr = s.sales.FetchSales(fetchCtx)
		return nil
	})
	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
		orders, ordersErr = s.orders.FetchOrders(fetchCtx)
		return nil
	})
	_ = g.Wait()

	var degraded []string
	if salesErr != nil {
		sales = nil
		degraded = append(degraded, streamSales)
		logDegraded(ctx, streamSales, salesErr)
	}
	if ordersErr != nil {
		orders = nil
		degraded = append(degraded, streamOrders)
		logDegraded(ctx, streamOrders, ordersErr)
	}

	now := s.Now()
	series, err := analytics.ComputeSeries(analytics.SeriesRequest{
		SalesGranularity:  salesG,
		OrdersGranularity: ordersG,
		Now:               now,
	}, sales, orders)
	if err != nil {
		return nil, invalidQueryf("%v", err)
	}

	return &Result{
		SalesGranularity:  salesG,
		OrdersGranularity: ordersG,
		GeneratedAt:       now,
		Series:            series,
		Degraded:          degraded,
	}, nil
}

// logDegraded reports a failed read. A read cut short because the caller
// was cancelled (a superseded cycle, a closed request) is not an upstream
// failure and is only logged at Debug.
func logDegraded(ctx context.Context, stream string, err error) {
	if ctx.Err() != nil {
		slog.Debug("[Dashboard] Read abandoned, caller cancelled",
			"stream", stream,
			"error", err)
		return
	}
	slog.Warn("[Dashboard] Upstream read failed, charting empty series",
		"stream", stream,
		"error", fmt.Errorf("%w: %s: %w", analytics.ErrDataFetch, stream, err))
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
