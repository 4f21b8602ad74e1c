package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shopdash-lab/shopdash/internal/core/analytics"
	"golang.org/x/sync/singleflight"
)

// ErrSuperseded is returned for a cycle whose result was discarded because
// a newer selection or refresh started after it.
var ErrSuperseded = errors.New("superseded by a newer dashboard cycle")

// Selection is the operator's chosen granularity for each chart.
type Selection struct {
	Sales  analytics.Granularity `json:"sales"`
	Orders analytics.Granularity `json:"orders"`
}

// Snapshot is the committed result of one cycle.
type Snapshot struct {
	Generation uint64 `json:"generation"`
	Result
}

// Overlay returns sel with o's non-empty granularities applied on top.
func (sel Selection) Overlay(o Selection) Selection {
	if o.Sales != "" {
		sel.Sales = o.Sales
	}
	if o.Orders != "" {
		sel.Orders = o.Orders
	}
	return sel
}

func (sel Selection) validate() error {
	if !sel.Sales.Valid() {
		return invalidQueryf("invalid sales granularity %q (must be daily, weekly, monthly, or yearly)", sel.Sales)
	}
	if !sel.Orders.Valid() {
		return invalidQueryf("invalid orders granularity %q (must be daily, weekly, monthly, or yearly)", sel.Orders)
	}
	return nil
}

// seriesComputer is the part of Service the board drives.
type seriesComputer interface {
	ComputeSeries(ctx context.Context, salesG, ordersG analytics.Granularity) (*Result, error)
}

// Board owns the operator's current selection and the last committed
// snapshot. Every selection change or refresh starts a cycle with a new
// generation and cancels the cycle before it. A cycle commits only if no
// newer one has started; otherwise its result is dropped.
type Board struct {
	svc    seriesComputer
	charts singleflight.Group // dedupes concurrent stateless chart reads
	cold   singleflight.Group // dedupes the first computation behind Current

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	selection  Selection
	current    *Snapshot
	inflight   int
	settled    chan struct{} // closed and replaced whenever a cycle finishes
}

// NewBoard creates a board showing initial until the operator changes it.
func NewBoard(svc seriesComputer, initial Selection) *Board {
	return &Board{
		svc:       svc,
		selection: initial,
		settled:   make(chan struct{}),
	}
}

// Selection returns the current selection.
func (b *Board) Selection() Selection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selection
}

// Current returns the last committed snapshot. Before the first commit it
// waits for a cycle already in flight, or starts one shared by every
// concurrent caller, so cold reads never supersede each other or an
// operator's selection.
func (b *Board) Current(ctx context.Context) (*Snapshot, error) {
	for {
		b.mu.Lock()
		current, inflight, settled := b.current, b.inflight, b.settled
		b.mu.Unlock()

		if current != nil {
			return current, nil
		}
		if inflight > 0 {
			select {
			case <-settled:
				continue
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		v, err, _ := b.cold.Do("current", func() (interface{}, error) {
			return b.Refresh(context.WithoutCancel(ctx))
		})
		if errors.Is(err, ErrSuperseded) {
			// A selection or refresh took over; wait for it to settle.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		return v.(*Snapshot), nil
	}
}

// Select records a new selection and recomputes. Returns ErrSuperseded if a
// newer cycle started before this one finished.
func (b *Board) Select(ctx context.Context, sel Selection) (*Snapshot, error) {
	return b.run(ctx, func(current Selection) Selection { return sel })
}

// Patch overlays the non-empty fields of o on the selection current when
// the cycle starts, so concurrent partial changes do not overwrite each other.
func (b *Board) Patch(ctx context.Context, o Selection) (*Snapshot, error) {
	return b.run(ctx, func(current Selection) Selection { return current.Overlay(o) })
}

// Refresh recomputes the current selection against fresh upstream data.
func (b *Board) Refresh(ctx context.Context) (*Snapshot, error) {
	return b.run(ctx, func(current Selection) Selection { return current })
}

// run starts a cycle for the selection choose derives from the current one.
// An invalid selection is rejected before it is stored or any cycle is
// cancelled.
func (b *Board) run(ctx context.Context, choose func(current Selection) Selection) (*Snapshot, error) {
	cycleCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	b.mu.Lock()
	sel := choose(b.selection)
	if err := sel.validate(); err != nil {
		b.mu.Unlock()
		return nil, err
	}
	b.generation++
	token := b.generation
	if b.cancel != nil {
		b.cancel()
	}
	b.cancel = cancel
	b.selection = sel
	b.inflight++
	b.mu.Unlock()

	res, err := b.svc.ComputeSeries(cycleCtx, sel.Sales, sel.Orders)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.inflight--
	close(b.settled)
	b.settled = make(chan struct{})

	if token != b.generation {
		slog.Debug("[Board] Discarding superseded cycle",
			"generation", token,
			"latest", b.generation)
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	b.current = &Snapshot{Generation: token, Result: *res}
	return b.current, nil
}
// Charts computes sel without touching the board's selection or snapshot.
// Concurrent calls for the same pair share one computation, which is
// detached from any single caller's cancellation and bounded by the
// service's fetch timeout.
func (b *Board) Charts(ctx context.Context, sel Selection) (*Result, error) {
	key := string(sel.Sales) + "|" + string(sel.Orders)
	v, err, shared := b.charts.Do(key, func() (interface{}, error) {
		return b.svc.ComputeSeries(context.WithoutCancel(ctx), sel.Sales, sel.Orders)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.Debug("[Board] Shared chart computation", "sales", sel.Sales, "orders", sel.Orders)
	}
	return v.(*Result), nil
}
