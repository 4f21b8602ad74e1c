package analytics

import (
	"errors"
	"fmt"
	"strings"
)

// Granularity is the reporting resolution of one series.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// ErrInvalidGranularity is returned for any value outside the four supported granularities.
var ErrInvalidGranularity = errors.New("invalid granularity")

// ParseGranularity parses a granularity name, case-insensitively.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q (must be daily, weekly, monthly, or yearly)", ErrInvalidGranularity, s)
	}
	return g, nil
}

// Valid reports whether g is one of the supported granularities.
func (g Granularity) Valid() bool {
	switch g {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}
