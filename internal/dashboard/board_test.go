package dashboard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopdash-lab/shopdash/internal/core/analytics"
	"github.com/stretchr/testify/require"
)

type computeFunc func(ctx context.Context, salesG, ordersG analytics.Granularity) (*Result, error)

func (f computeFunc) ComputeSeries(ctx context.Context, salesG, ordersG analytics.Granularity) (*Result, error) {
	return f(ctx, salesG, ordersG)
}

func echoCompute(ctx context.Context, salesG, ordersG analytics.Granularity) (*Result, error) {
	return &Result{SalesGranularity: salesG, OrdersGranularity: ordersG}, nil
}

func TestBoard_SelectCommitsSnapshot(t *testing.T) {
	board := NewBoard(computeFunc(echoCompute), Selection{Sales: analytics.Weekly, Orders: analytics.Weekly})

	snap, err := board.Select(context.Background(), Selection{Sales: analytics.Monthly, Orders: analytics.Yearly})
	require.NoError(t, err)
	require.Equal(t, uint64(1), snap.Generation)
	require.Equal(t, analytics.Monthly, snap.SalesGranularity)
	require.Equal(t, analytics.Yearly, snap.OrdersGranularity)
	require.Equal(t, Selection{Sales: analytics.Monthly, Orders: analytics.Yearly}, board.Selection())

	current, err := board.Current(context.Background())
	require.NoError(t, err)
	require.Same(t, snap, current)
}

func TestBoard_CurrentComputesOnFirstAccess(t *testing.T) {
	calls := 0
	board := NewBoard(computeFunc(func(ctx context.Context, s, o analytics.Granularity) (*Result, error) {
		calls++
		return echoCompute(ctx, s, o)
	}), Selection{Sales: analytics.Daily, Orders: analytics.Monthly})

	first, err := board.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, analytics.Daily, first.SalesGranularity)

	second, err := board.Current(context.Background())
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, calls)
}

func TestBoard_RefreshKeepsSelection(t *testing.T) {
	board := NewBoard(computeFunc(echoCompute), Selection{Sales: analytics.Weekly, Orders: analytics.Weekly})

	_, err := board.Select(context.Background(), Selection{Sales: analytics.Yearly, Orders: analytics.Daily})
	require.NoError(t, err)

	snap, err := board.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(2), snap.Generation)
	require.Equal(t, analytics.Yearly, snap.SalesGranularity)
	require.Equal(t, analytics.Daily, snap.OrdersGranularity)
}

func TestBoard_NewerSelectionSupersedesInFlightCycle(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	staleCtxErr := make(chan error, 1)

	board := NewBoard(computeFunc(func(ctx context.Context, s, o analytics.Granularity) (*Result, error) {
		if s == analytics.Yearly {
			close(started)
			<-release
			staleCtxErr <- ctx.Err()
		}
		return echoCompute(ctx, s, o)
	}), Selection{Sales: analytics.Weekly, Orders: analytics.Weekly})

	type outcome struct {
		snap *Snapshot
		err  error
	}
	staleDone := make(chan outcome, 1)
	go func() {
		snap, err := board.Select(context.Background(), Selection{Sales: analytics.Yearly, Orders: analytics.Weekly})
		staleDone <- outcome{snap, err}
	}()
	<-started

	latest, err := board.Select(context.Background(), Selection{Sales: analytics.Daily, Orders: analytics.Weekly})
	require.NoError(t, err)
	require.Equal(t, uint64(2), latest.Generation)

	close(release)

	select {
	case got := <-staleDone:
		require.ErrorIs(t, got.err, ErrSuperseded)
		require.Nil(t, got.snap)
	case <-time.After(5 * time.Second):
		t.Fatal("superseded cycle never returned")
	}
	require.ErrorIs(t, <-staleCtxErr, context.Canceled, "superseded cycle's context must be cancelled")

	current, err := board.Current(context.Background())
	require.NoError(t, err)
	require.Same(t, latest, current)
	require.Equal(t, analytics.Daily, board.Selection().Sales)
}

func TestBoard_ComputeErrorDoesNotCommit(t *testing.T) {
	fail := false
	board := NewBoard(computeFunc(func(ctx context.Context, s, o analytics.Granularity) (*Result, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return echoCompute(ctx, s, o)
	}), Selection{Sales: analytics.Weekly, Orders: analytics.Weekly})

	good, err := board.Refresh(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = board.Refresh(context.Background())
	require.ErrorContains(t, err, "boom")

	current, err := board.Current(context.Background())
	require.NoError(t, err)
	require.Same(t, good, current)
}

func TestBoard_ChartsSharesConcurrentComputation(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	board := NewBoard(computeFunc(func(ctx context.Context, s, o analytics.Granularity) (*Result, error) {
		calls.Add(1)
		<-release
		return echoCompute(ctx, s, o)
	}), Selection{Sales: analytics.Weekly, Orders: analytics.Weekly})

	sel := Selection{Sales: analytics.Yearly, Orders: analytics.Monthly}
	const callers = 5
	results := make([]*Result, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := board.Charts(context.Background(), sel)
			if err == nil {
				results[i] = res
			}
		}(i)
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond) // let the other callers join the in-flight call
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
	for _, res := range results {
		require.NotNil(t, res)
		require.Equal(t, analytics.Yearly, res.SalesGranularity)
	}
	require.Equal(t, Selection{Sales: analytics.Weekly, Orders: analytics.Weekly}, board.Selection())
}

func TestBoard_ChartsIgnoresCallerCancellation(t *testing.T) {
	board := NewBoard(computeFunc(func(ctx context.Context, s, o analytics.Granularity) (*Result, error) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return echoCompute(ctx, s, o)
	}), Selection{Sales: analytics.Weekly, Orders: analytics.Weekly})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := board.Charts(ctx, Selection{Sales: analytics.Daily, Orders: analytics.Daily})
	require.NoError(t, err)
	require.Equal(t, analytics.Daily, res.OrdersGranularity)
}

func TestBoard_ColdCurrentSharesOneCycle(t *testing.T) {
	var calls atomic.Int32
	board := NewBoard(computeFunc(func(ctx context.Context, s, o analytics.Granularity) (*Result, error) {
		calls.Add(1)
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return echoCompute(ctx, s, o)
	}), Selection{Sales: analytics.Weekly, Orders: analytics.Weekly})

	const readers = 3
	snaps := make([]*Snapshot, readers)
	errs := make([]error, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snaps[i], errs[i] = board.Current(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		require.Same(t, snaps[0], snaps[i])
	}
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, uint64(1), snaps[0].Generation)
}

func TestBoard_ColdCurrentWaitsForInFlightSelect(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	selectCtxErr := make(chan error, 1)
	var calls atomic.Int32

	board := NewBoard(computeFunc(func(ctx context.Context, s, o analytics.Granularity) (*Result, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			selectCtxErr <- ctx.Err()
		}
		return echoCompute(ctx, s, o)
	}), Selection{Sales: analytics.Weekly, Orders: analytics.Weekly})

	selectDone := make(chan error, 1)
	go func() {
		_, err := board.Select(context.Background(), Selection{Sales: analytics.Yearly, Orders: analytics.Daily})
		selectDone <- err
	}()
	<-started

	currentDone := make(chan *Snapshot, 1)
	go func() {
		snap, err := board.Current(context.Background())
		if err == nil {
			currentDone <- snap
		}
		close(currentDone)
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	require.NoError(t, <-selectDone)
	require.NoError(t, <-selectCtxErr, "a cold read must not cancel the operator's selection")

	snap := <-currentDone
	require.NotNil(t, snap)
	require.Equal(t, analytics.Yearly, snap.SalesGranularity)
	require.Equal(t, int32(1), calls.Load())
}

func TestBoard_ConcurrentPatchesKeepBothChanges(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	board := NewBoard(computeFunc(func(ctx context.Context, s, o analytics.Granularity) (*Result, error) {
		calls.Add(1)
		<-release
		return echoCompute(ctx, s, o)
	}), Selection{Sales: analytics.Weekly, Orders: analytics.Weekly})

	var wg sync.WaitGroup
	for _, o := range []Selection{{Sales: analytics.Yearly}, {Orders: analytics.Monthly}} {
		wg.Add(1)
		go func(o Selection) {
			defer wg.Done()
			_, _ = board.Patch(context.Background(), o)
		}(o)
	}

	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	close(release)
	wg.Wait()

	want := Selection{Sales: analytics.Yearly, Orders: analytics.Monthly}
	require.Equal(t, want, board.Selection())

	current, err := board.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.Sales, current.SalesGranularity)
	require.Equal(t, want.Orders, current.OrdersGranularity)
}

func TestBoard_InvalidSelectionIsRejected(t *testing.T) {
	initial := Selection{Sales: analytics.Weekly, Orders: analytics.Monthly}
	board := NewBoard(computeFunc(echoCompute), initial)

	tests := []struct {
		name string
		run  func() (*Snapshot, error)
	}{
		{"select unknown sales", func() (*Snapshot, error) {
			return board.Select(context.Background(), Selection{Sales: "hourly", Orders: analytics.Daily})
		}},
		{"select empty orders", func() (*Snapshot, error) {
			return board.Select(context.Background(), Selection{Sales: analytics.Daily})
		}},
		{"patch unknown orders", func() (*Snapshot, error) {
			return board.Patch(context.Background(), Selection{Orders: "fortnightly"})
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap, err := tc.run()
			require.ErrorIs(t, err, ErrInvalidQuery)
			require.Nil(t, snap)
			require.Equal(t, initial, board.Selection())
		})
	}

	snap, err := board.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(1), snap.Generation, "rejected selections take no generation")
	require.Equal(t, analytics.Monthly, snap.OrdersGranularity)
}

func TestSelection_Overlay(t *testing.T) {
	base := Selection{Sales: analytics.Weekly, Orders: analytics.Daily}

	require.Equal(t, base, base.Overlay(Selection{}))
	require.Equal(t, Selection{Sales: analytics.Yearly, Orders: analytics.Daily}, base.Overlay(Selection{Sales: analytics.Yearly}))
	require.Equal(t, Selection{Sales: analytics.Weekly, Orders: analytics.Monthly}, base.Overlay(Selection{Orders: analytics.Monthly}))
}
