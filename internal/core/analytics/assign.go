package analytics

import (
	"sort"
	"time"
)

// AssignPeriod returns the index of the period whose [Start, End] contains ts.
// ok is false when ts falls outside every period; such events are dropped
// from all totals.
//
// periods must be chronological and contiguous, as produced by
// GeneratePeriods, which lets the lookup binary-search on End.
func AssignPeriod(ts time.Time, periods []Period) (index int, ok bool) {
	i := sort.Search(len(periods), func(i int) bool {
		return !periods[i].End.Before(ts)
	})
	if i == len(periods) || ts.Before(periods[i].Start) {
		return -1, false
	}
	return periods[i].Index, true
}
