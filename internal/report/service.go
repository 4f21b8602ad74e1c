package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopdash-lab/shopdash/internal/core/storage"
)

// Service builds sales reports from stored sale lines.
type Service struct {
	store storage.SaleLineStore
	loc   *time.Location
	nowFn func() time.Time
}

// NewService creates a report service whose periods follow loc's calendar.
func NewService(store storage.SaleLineStore, loc *time.Location) *Service {
	return &Service{
		store: store,
		loc:   loc,
		nowFn: time.Now,
	}
}

// SalesReport loads every sale line and applies f.
func (s *Service) SalesReport(ctx context.Context, f Filter) (*Report, error) {
	lines, err := s.store.FetchSaleLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch sale lines: %w", err)
	}

	rep := Build(lines, f, s.nowFn().In(s.loc))
	return &rep, nil
}
