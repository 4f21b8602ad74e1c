package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SalesPoint is one chart point of the sales series.
type SalesPoint struct {
	Label   string          `json:"date"`
	Total   decimal.Decimal `json:"total"`
	Online  decimal.Decimal `json:"online"`
	OnStore decimal.Decimal `json:"on_store"`
}

// OrdersPoint is one chart point of the orders series.
type OrdersPoint struct {
	Label      string `json:"date"`
	Pending    int    `json:"pending"`
	PaidToShip int    `json:"paid_to_ship"`
	ToReceive  int    `json:"to_receive"`
	Completed  int    `json:"completed"`
	Cancelled  int    `json:"cancelled"`
}

// BuildSalesSeries emits one point per period in chronological order.
// buckets must be indexed by Period.Index.
func BuildSalesSeries(periods []Period, buckets []SalesBucket) []SalesPoint {
	ordered := chronological(periods)
	points := make([]SalesPoint, 0, len(ordered))
	for _, p := range ordered {
		b := buckets[p.Index]
		points = append(points, SalesPoint{
			Label:   p.Label,
			Total:   b.Total,
			Online:  b.Online,
			OnStore: b.OnStore,
		})
	}
	return points
}

// BuildOrdersSeries emits one point per period in chronological order.
// buckets must be indexed by Period.Index.
func BuildOrdersSeries(periods []Period, buckets []OrdersBucket) []OrdersPoint {
	ordered := chronological(periods)
	points := make([]OrdersPoint, 0, len(ordered))
	for _, p := range ordered {
		b := buckets[p.Index]
		points = append(points, OrdersPoint{
			Label:      p.Label,
			Pending:    b.Count(StatusPending),
			PaidToShip: b.Count(StatusPaidToShip),
			ToReceive:  b.Count(StatusToReceive),
			Completed:  b.Count(StatusCompleted),
			Cancelled:  b.Count(StatusCancelled),
		})
	}
	return points
}

// chronological returns a copy of periods sorted by Start.
func chronological(periods []Period) []Period {
	ordered := make([]Period, len(periods))
	copy(ordered, periods)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})
	return ordered
}
