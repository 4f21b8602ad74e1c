package analytics

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a stored amount to a decimal.
// Returns decimal.Zero if the value is empty or not a number; a bad amount
// on one record never fails the batch.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
