package storage

import (
	"context"
	"errors"

	v1 "github.com/shopdash-lab/shopdash/internal/api/v1"
	"github.com/shopdash-lab/shopdash/internal/core/analytics"
)

// ErrDuplicate is returned when a sale line with the same id already exists.
var ErrDuplicate = errors.New("sale line already exists")

// SalesReader supplies the completed sales the dashboard charts.
// Rows without a usable timestamp are skipped, never returned.
type SalesReader interface {
	FetchSales(ctx context.Context) ([]analytics.SaleEvent, error)
}

// OrdersReader supplies every order regardless of status. Classification
// into status categories belongs to the aggregator.
type OrdersReader interface {
	FetchOrders(ctx context.Context) ([]analytics.OrderEvent, error)
}

// SaleLineStore reads and writes full sale rows for reporting and checkout.
type SaleLineStore interface {
	// FetchSaleLines returns every sale line, newest first.
	FetchSaleLines(ctx context.Context) ([]*v1.SaleLine, error)

	// SaveSaleLines inserts one checkout's lines atomically and populates
	// each line's ID.
	SaveSaleLines(ctx context.Context, lines []*v1.SaleLine) error
}
