package analytics

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SalesBucket accumulates sale amounts for one period.
// Online+OnStore never exceeds Total: sales on any other channel count
// toward Total only.
type SalesBucket struct {
	Total   decimal.Decimal
	Online  decimal.Decimal
	OnStore decimal.Decimal
}

// OrdersBucket counts orders per status category for one period.
type OrdersBucket struct {
	Counts [statusCategoryCount]int
}

// Count returns the number of orders in category c.
func (b OrdersBucket) Count(c StatusCategory) int {
	if c < 0 || c >= statusCategoryCount {
		return 0
	}
	return b.Counts[c]
}

// statusCategories maps upstream order statuses to their category.
// The order system writes "To Ship" and "To Receive" with a space; both
// spellings are the same status.
var statusCategories = map[string]StatusCategory{
	"Pending":    StatusPending,
	"Paid":       StatusPaidToShip,
	"ToShip":     StatusPaidToShip,
	"To Ship":    StatusPaidToShip,
	"ToReceive":  StatusToReceive,
	"To Receive": StatusToReceive,
	"Completed":  StatusCompleted,
	"Cancelled":  StatusCancelled,
}

// ClassifyStatus maps an order status to its category.
// ok is false for any status outside the fixed mapping.
func ClassifyStatus(status string) (StatusCategory, bool) {
	c, ok := statusCategories[status]
	return c, ok
}

// ParseChannel maps a sale's sold_by value to a Channel.
func ParseChannel(soldBy string) Channel {
	switch strings.TrimSpace(soldBy) {
	case "Online":
		return ChannelOnline
	case "On Store", "OnStore":
		return ChannelOnStore
	default:
		return ChannelOther
	}
}

// AggregateSales folds events into one bucket per period, indexed by
// Period.Index. Events outside every period are skipped.
func AggregateSales(periods []Period, events []SaleEvent) []SalesBucket {
	buckets := make([]SalesBucket, len(periods))
	for _, evt := range events {
		idx, ok := AssignPeriod(evt.Timestamp, periods)
		if !ok {
			continue
		}

		b := &buckets[idx]
		b.Total = b.Total.Add(evt.Amount)
		switch evt.Channel {
		case ChannelOnline:
			b.Online = b.Online.Add(evt.Amount)
		case ChannelOnStore:
			b.OnStore = b.OnStore.Add(evt.Amount)
		}
	}
	return buckets
}

// AggregateOrders counts events per status category into one bucket per
// period, indexed by Period.Index. Events outside every period, and events
// whose status ClassifyStatus does not recognize, are skipped.
func AggregateOrders(periods []Period, events []OrderEvent) []OrdersBucket {
	buckets := make([]OrdersBucket, len(periods))
	for _, evt := range events {
		idx, ok := AssignPeriod(evt.Timestamp, periods)
		if !ok {
			continue
		}
		category, ok := ClassifyStatus(evt.Status)
		if !ok {
			continue
		}
		buckets[idx].Counts[category]++
	}
	return buckets
}
