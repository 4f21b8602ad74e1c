package analytics

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestComputeSeries_WeeklySalesScenario(t *testing.T) {
	friday := time.Date(2026, 10, 16, 10, 0, 0, 0, manila)
	sales := []SaleEvent{
		{Timestamp: time.Date(2026, 10, 13, 11, 0, 0, 0, manila), Amount: decimal.RequireFromString("150.00"), Channel: ChannelOnline},
	}

	series, err := ComputeSeries(SeriesRequest{
		SalesGranularity:  Weekly,
		OrdersGranularity: Weekly,
		Now:               friday,
	}, sales, nil)
	require.NoError(t, err)

	require.Len(t, series.Sales, 7)
	for i, p := range series.Sales {
		if i == 2 {
			require.Equal(t, "10/13/2026", p.Label)
			requireDecimal(t, "150", p.Total)
			requireDecimal(t, "150", p.Online)
			requireDecimal(t, "0", p.OnStore)
			continue
		}
		requireDecimal(t, "0", p.Total)
	}
}

func TestComputeSeries_WeeklyOrdersScenario(t *testing.T) {
	friday := time.Date(2026, 10, 16, 10, 0, 0, 0, manila)
	orders := []OrderEvent{
		{Timestamp: time.Date(2026, 10, 15, 16, 0, 0, 0, manila), Status: "Paid"},
	}

	series, err := ComputeSeries(SeriesRequest{
		SalesGranularity:  Daily,
		OrdersGranularity: Weekly,
		Now:               friday,
	}, nil, orders)
	require.NoError(t, err)

	require.Len(t, series.Sales, 1)
	require.Len(t, series.Orders, 7)
	require.Equal(t, OrdersPoint{Label: "10/15/2026", PaidToShip: 1}, series.Orders[4])
	for i, p := range series.Orders {
		if i == 4 {
			continue
		}
		require.Equal(t, OrdersPoint{Label: p.Label}, p, "point %d should be empty", i)
	}
}

func TestComputeSeries_YearlyLabelsAndBoundary(t *testing.T) {
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, manila)
	sales := []SaleEvent{
		{Timestamp: endOf(2026, 1, 31), Amount: decimal.NewFromInt(10), Channel: ChannelOnStore},
		{Timestamp: time.Date(2026, 2, 1, 0, 0, 0, 0, manila), Amount: decimal.NewFromInt(7), Channel: ChannelOnline},
	}

	series, err := ComputeSeries(SeriesRequest{SalesGranularity: Yearly, OrdersGranularity: Monthly, Now: now}, sales, nil)
	require.NoError(t, err)

	require.Len(t, series.Sales, 12)
	require.Len(t, series.Orders, 31)
	require.Equal(t, "Jan 2026", series.Sales[0].Label)
	require.Equal(t, "Oct 2026", series.Sales[9].Label)
	requireDecimal(t, "10", series.Sales[0].OnStore)
	requireDecimal(t, "7", series.Sales[1].Online)
	require.Equal(t, "10/01/2026", series.Orders[0].Label)
	require.Equal(t, "10/31/2026", series.Orders[30].Label)
}

func TestComputeSeries_InvalidGranularity(t *testing.T) {
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, manila)

	_, err := ComputeSeries(SeriesRequest{SalesGranularity: "hourly", OrdersGranularity: Weekly, Now: now}, nil, nil)
	require.ErrorIs(t, err, ErrInvalidGranularity)
	require.Contains(t, err.Error(), "sales")

	_, err = ComputeSeries(SeriesRequest{SalesGranularity: Weekly, OrdersGranularity: "", Now: now}, nil, nil)
	require.ErrorIs(t, err, ErrInvalidGranularity)
	require.Contains(t, err.Error(), "orders")
}

func TestComputeSeries_EmptyInputsYieldZeroFilledSeries(t *testing.T) {
	now := time.Date(2024, 2, 14, 10, 0, 0, 0, manila)

	series, err := ComputeSeries(SeriesRequest{SalesGranularity: Monthly, OrdersGranularity: Yearly, Now: now}, nil, nil)
	require.NoError(t, err)

	require.Len(t, series.Sales, 29)
	require.Len(t, series.Orders, 12)
	for _, p := range series.Sales {
		requireDecimal(t, "0", p.Total)
	}
}

// randomEvents spreads events over three weeks centred on now's week so a
// share of them land outside the window.
func randomEvents(seed int64, now time.Time, n int) ([]SaleEvent, []OrderEvent) {
	rng := rand.New(rand.NewSource(seed))
	statuses := []string{"Pending", "Paid", "To Ship", "To Receive", "Completed", "Cancelled", "Refunded"}
	channels := []Channel{ChannelOnline, ChannelOnStore, ChannelOther}
	base := now.AddDate(0, 0, -14)
	span := int64(21 * 24 * time.Hour)

	sales := make([]SaleEvent, 0, n)
	orders := make([]OrderEvent, 0, n)
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(rng.Int63n(span)))
		sales = append(sales, SaleEvent{
			Timestamp: ts,
			Amount:    decimal.New(rng.Int63n(100000), -2),
			Channel:   channels[rng.Intn(len(channels))],
		})
		orders = append(orders, OrderEvent{
			Timestamp: ts,
			Status:    statuses[rng.Intn(len(statuses))],
		})
	}
	return sales, orders
}

func TestComputeSeries_SumLaw(t *testing.T) {
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, manila)
	sales, orders := randomEvents(42, now, 500)
	window := ResolveRange(Weekly, now)

	wantTotal := decimal.Zero
	wantOrders := 0
	for _, s := range sales {
		if window.Contains(s.Timestamp) {
			wantTotal = wantTotal.Add(s.Amount)
		}
	}
	for _, o := range orders {
		if _, known := ClassifyStatus(o.Status); known && window.Contains(o.Timestamp) {
			wantOrders++
		}
	}

	series, err := ComputeSeries(SeriesRequest{SalesGranularity: Weekly, OrdersGranularity: Weekly, Now: now}, sales, orders)
	require.NoError(t, err)

	gotTotal := decimal.Zero
	for _, p := range series.Sales {
		gotTotal = gotTotal.Add(p.Total)
		require.True(t, p.Online.Add(p.OnStore).LessThanOrEqual(p.Total))
	}
	gotOrders := 0
	for _, p := range series.Orders {
		gotOrders += p.Pending + p.PaidToShip + p.ToReceive + p.Completed + p.Cancelled
	}

	require.True(t, wantTotal.Equal(gotTotal), "want=%s got=%s", wantTotal, gotTotal)
	require.Equal(t, wantOrders, gotOrders)
}

func TestComputeSeries_Idempotent(t *testing.T) {
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, manila)
	sales, orders := randomEvents(7, now, 200)
	req := SeriesRequest{SalesGranularity: Monthly, OrdersGranularity: Weekly, Now: now}

	first, err := ComputeSeries(req, sales, orders)
	require.NoError(t, err)
	second, err := ComputeSeries(req, sales, orders)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	require.JSONEq(t, string(a), string(b))
}

func TestComputeSeries_EventOrderDoesNotMatter(t *testing.T) {
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, manila)
	sales, orders := randomEvents(99, now, 200)
	req := SeriesRequest{SalesGranularity: Weekly, OrdersGranularity: Weekly, Now: now}

	forward, err := ComputeSeries(req, sales, orders)
	require.NoError(t, err)

	for i, j := 0, len(sales)-1; i < j; i, j = i+1, j-1 {
		sales[i], sales[j] = sales[j], sales[i]
		orders[i], orders[j] = orders[j], orders[i]
	}
	reversed, err := ComputeSeries(req, sales, orders)
	require.NoError(t, err)

	require.Equal(t, forward.Orders, reversed.Orders)
	for i := range forward.Sales {
		require.True(t, forward.Sales[i].Total.Equal(reversed.Sales[i].Total))
	}
}

func TestBuildSalesSeries_EmitsChronologically(t *testing.T) {
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, manila)
	periods := weekOf(now)
	buckets := AggregateSales(periods, []SaleEvent{
		{Timestamp: time.Date(2026, 10, 17, 9, 0, 0, 0, manila), Amount: decimal.NewFromInt(3), Channel: ChannelOnline},
	})

	shuffled := make([]Period, len(periods))
	copy(shuffled, periods)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	points := BuildSalesSeries(shuffled, buckets)
	require.Len(t, points, 7)
	for i, p := range points {
		require.Equal(t, periods[i].Label, p.Label)
	}
	requireDecimal(t, "3", points[6].Total)
	// the caller's slice is left as given
	require.Len(t, shuffled, 7)
}

func TestSeries_JSONShape(t *testing.T) {
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, manila)
	series, err := ComputeSeries(SeriesRequest{SalesGranularity: Daily, OrdersGranularity: Daily, Now: now}, []SaleEvent{
		{Timestamp: now, Amount: decimal.RequireFromString("12.5"), Channel: ChannelOnStore},
	}, []OrderEvent{{Timestamp: now, Status: "Completed"}})
	require.NoError(t, err)

	raw, err := json.Marshal(series)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"sales": [{"date": "10/16/2026", "total": "12.5", "online": "0", "on_store": "12.5"}],
		"orders": [{"date": "10/16/2026", "pending": 0, "paid_to_ship": 0, "to_receive": 0, "completed": 1, "cancelled": 0}]
	}`, string(raw))
}
