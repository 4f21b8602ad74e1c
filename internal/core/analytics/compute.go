package analytics

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDataFetch marks an upstream read that failed. The stream it belongs
	// to degrades to an empty list; it never fails a computation.
	ErrDataFetch = errors.New("data fetch failed")

	// ErrMalformedRecord marks a single record that cannot be turned into an
	// event (no usable timestamp). The record is skipped.
	ErrMalformedRecord = errors.New("malformed record")
)

// SeriesRequest carries everything a computation depends on besides the
// events themselves. Now's location is the civil calendar for both series.
type SeriesRequest struct {
	SalesGranularity  Granularity
	OrdersGranularity Granularity
	Now               time.Time
}

// Series is the chart-ready output of one computation.
type Series struct {
	Sales  []SalesPoint  `json:"sales"`
	Orders []OrdersPoint `json:"orders"`
}

// ComputeSeries runs the full pipeline: resolve each stream's window,
// generate its periods, aggregate its events and emit the ordered series.
// It is pure; identical inputs always produce identical output.
// The only error is an invalid granularity in req.
func ComputeSeries(req SeriesRequest, sales []SaleEvent, orders []OrderEvent) (Series, error) {
	if !req.SalesGranularity.Valid() {
		return Series{}, fmt.Errorf("sales: %w: %q", ErrInvalidGranularity, req.SalesGranularity)
	}
	if !req.OrdersGranularity.Valid() {
		return Series{}, fmt.Errorf("orders: %w: %q", ErrInvalidGranularity, req.OrdersGranularity)
	}

	salesPeriods := GeneratePeriods(ResolveRange(req.SalesGranularity, req.Now), req.SalesGranularity)
	orderPeriods := GeneratePeriods(ResolveRange(req.OrdersGranularity, req.Now), req.OrdersGranularity)

	return Series{
		Sales:  BuildSalesSeries(salesPeriods, AggregateSales(salesPeriods, sales)),
		Orders: BuildOrdersSeries(orderPeriods, AggregateOrders(orderPeriods, orders)),
	}, nil
}
