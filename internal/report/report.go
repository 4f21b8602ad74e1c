package report

import (
	"sort"
	"time"

	v1 "github.com/shopdash-lab/shopdash/internal/api/v1"
	"github.com/shopdash-lab/shopdash/internal/core/analytics"
	"github.com/shopspring/decimal"
)

// Filter narrows a sales report. Zero values mean "all".
type Filter struct {
	// SoldBy matches sale lines whose channel equals it exactly.
	SoldBy string

	// Period keeps sale lines inside the current window of that granularity.
	Period analytics.Granularity
}

// Line is one sale line with its derived amounts.
type Line struct {
	ID            int64           `json:"id"`
	TransactionID string          `json:"transaction_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingFee   decimal.Decimal `json:"shipping_fee"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	Profit        decimal.Decimal `json:"profit"`
	PaymentMethod string          `json:"payment_method"`
	SoldBy        string          `json:"sold_by"`
	Date          time.Time       `json:"date"`
}

type Summary struct {
	ItemsSold   int             `json:"items_sold"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}

type Report struct {
	SoldBy  string                `json:"sold_by,omitempty"`
	Period  analytics.Granularity `json:"period,omitempty"`
	Range   *analytics.TimeRange  `json:"range,omitempty"`
	Summary Summary               `json:"summary"`
	Lines   []Line                `json:"lines"`
}

// Subtotal returns the recorded subtotal, or quantity*price when none was
// recorded.
func Subtotal(l *v1.SaleLine) decimal.Decimal {
	if l.Subtotal.IsPositive() {
		return l.Subtotal
	}
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Build filters lines and derives per-line and summary amounts.
// now anchors the period window. Lines are returned newest first.
func Build(lines []*v1.SaleLine, f Filter, now time.Time) Report {
	rep := Report{
		SoldBy: f.SoldBy,
		Period: f.Period,
		Lines:  []Line{},
		Summary: Summary{
			TotalSales:  decimal.Zero,
			TotalProfit: decimal.Zero,
		},
	}

	var window analytics.TimeRange
	if f.Period != "" {
		window = analytics.ResolveRange(f.Period, now)
		rep.Range = &window
	}

	for _, l := range lines {
		if f.SoldBy != "" && l.SoldBy != f.SoldBy {
			continue
		}
		if rep.Range != nil && !window.Contains(l.OccurredAt()) {
			continue
		}

		subtotal := Subtotal(l)
		totalSales := subtotal.Add(l.ShippingFee)
		profit := subtotal.Sub(l.Cost)

		rep.Lines = append(rep.Lines, Line{
			ID:            l.ID,
			TransactionID: l.TransactionID,
			ProductName:   l.ProductName,
			Quantity:      l.Quantity,
			Price:         l.Price,
			Subtotal:      subtotal,
			ShippingFee:   l.ShippingFee,
			TotalSales:    totalSales,
			Profit:        profit,
			PaymentMethod: l.PaymentMethod,
			SoldBy:        l.SoldBy,
			Date:          l.OccurredAt(),
		})
		rep.Summary.ItemsSold += l.Quantity
		rep.Summary.TotalSales = rep.Summary.TotalSales.Add(totalSales)
		rep.Summary.TotalProfit = rep.Summary.TotalProfit.Add(profit)
	}

	sort.SliceStable(rep.Lines, func(i, j int) bool {
		return rep.Lines[i].Date.After(rep.Lines[j].Date)
	})

	return rep
}
