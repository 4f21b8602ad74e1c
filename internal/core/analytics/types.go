package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeRange is a reporting window. Both bounds are inclusive.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies within [Start, End].
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Period is one sub-interval of a TimeRange. Start and End are inclusive.
// Index is the period's position in its generated sequence and is the only
// key buckets are stored under; Label is for display.
type Period struct {
	Index int
	Label string
	Start time.Time
	End   time.Time
}

// Channel attributes a sale to where it was made.
type Channel int

const (
	ChannelOther Channel = iota
	ChannelOnline
	ChannelOnStore
)

func (c Channel) String() string {
	switch c {
	case ChannelOnline:
		return "Online"
	case ChannelOnStore:
		return "On Store"
	default:
		return "Other"
	}
}

// SaleEvent is one completed sale as supplied by a SalesReader.
type SaleEvent struct {
	Timestamp time.Time
	Amount    decimal.Decimal
	Channel   Channel
}

// OrderEvent is one order as supplied by an OrdersReader.
// Status is whatever label the upstream order system uses.
type OrderEvent struct {
	Timestamp time.Time
	Status    string
}

// StatusCategory is one of the five order-lifecycle buckets.
type StatusCategory int

const (
	StatusPending StatusCategory = iota
	StatusPaidToShip
	StatusToReceive
	StatusCompleted
	StatusCancelled

	statusCategoryCount
)

func (s StatusCategory) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusPaidToShip:
		return "PaidToShip"
	case StatusToReceive:
		return "ToReceive"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
