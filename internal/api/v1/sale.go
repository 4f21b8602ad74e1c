package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Channel names as stored in sales.sold_by.
const (
	SoldByOnline  = "Online"
	SoldByOnStore = "On Store"
)

// DefaultPaymentMethod is recorded for point-of-sale checkouts that do not name one.
const DefaultPaymentMethod = "Cash"

// SaleLine is one row of the sales table: a single product within a transaction.
type SaleLine struct {
	// ID is the line's database id. Zero until persisted.
	ID int64 `json:"id"`

	// TransactionID groups every line sold in the same checkout.
	TransactionID string `json:"transaction_id"`

	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`

	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Cost        decimal.Decimal `json:"cost"`
	Total       decimal.Decimal `json:"total"`

	PaymentMethod string `json:"payment_method"`

	// SoldBy is the sales channel, "Online" or "On Store".
	SoldBy string `json:"sold_by"`

	// Date is when the sale happened. Rows written before the column existed
	// carry only CreatedAt, so readers fall back to it.
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// OccurredAt returns the instant the sale belongs to: Date, or CreatedAt when
// Date is unset.
func (l *SaleLine) OccurredAt() time.Time {
	if !l.Date.IsZero() {
		return l.Date
	}
	return l.CreatedAt
}

// CheckoutItem is one cart entry in a point-of-sale checkout.
type CheckoutItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
}

// CheckoutRequest is the body of POST /v1/sales.
type CheckoutRequest struct {
	// TransactionID is optional. A client that retries a checkout sends the
	// same id so the retry is rejected as a duplicate instead of recorded twice.
	TransactionID string `json:"transaction_id,omitempty"`

	Items         []CheckoutItem `json:"items"`
	PaymentMethod string         `json:"payment_method,omitempty"`
	SoldBy        string         `json:"sold_by,omitempty"`
}

// Validate checks the cart and applies defaults for payment method and channel.
func (r *CheckoutRequest) Validate() error {
	if len(r.Items) == 0 {
		return fmt.Errorf("items must not be empty")
	}

	seen := make(map[string]int, len(r.Items))
	for i, item := range r.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return fmt.Errorf("items[%d].product_id is required", i)
		}
		if j, dup := seen[item.ProductID]; dup {
			return fmt.Errorf("items[%d].product_id duplicates items[%d]", i, j)
		}
		seen[item.ProductID] = i
		if item.Quantity <= 0 {
			return fmt.Errorf("items[%d].quantity must be positive", i)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("items[%d].price must not be negative", i)
		}
		if item.Cost.IsNegative() {
			return fmt.Errorf("items[%d].cost must not be negative", i)
		}
	}

	if r.TransactionID != "" {
		if _, err := uuid.Parse(r.TransactionID); err != nil {
			return fmt.Errorf("transaction_id must be a UUID: %w", err)
		}
	}

	r.SoldBy = strings.TrimSpace(r.SoldBy)
	switch r.SoldBy {
	case "":
		r.SoldBy = SoldByOnStore
	case SoldByOnline, SoldByOnStore:
	default:
		return fmt.Errorf("sold_by must be %q or %q", SoldByOnline, SoldByOnStore)
	}

	if strings.TrimSpace(r.PaymentMethod) == "" {
		r.PaymentMethod = DefaultPaymentMethod
	}

	return nil
}

// Lines expands the cart into sale lines sharing one transaction id.
// Call Validate first.
func (r *CheckoutRequest) Lines(transactionID string, now time.Time) []*SaleLine {
	lines := make([]*SaleLine, 0, len(r.Items))
	for _, item := range r.Items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal := item.Price.Mul(qty)
		lines = append(lines, &SaleLine{
			TransactionID: transactionID,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			Price:         item.Price,
			Subtotal:      subtotal,
			Cost:          item.Cost.Mul(qty),
			Total:         subtotal,
			PaymentMethod: r.PaymentMethod,
			SoldBy:        r.SoldBy,
			Date:          now,
			CreatedAt:     now,
		})
	}
	return lines
}

// CheckoutResponse acknowledges a recorded checkout.
type CheckoutResponse struct {
	TransactionID string          `json:"transaction_id"`
	Lines         int             `json:"lines"`
	Total         decimal.Decimal `json:"total"`
}
