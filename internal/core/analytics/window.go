package analytics

import "time"

// StartOfDay returns midnight of t's civil day in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's civil day.
// Computed from the next midnight so days shortened or lengthened by a
// DST transition still end where the following day begins.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ResolveRange returns the inclusive reporting window for g anchored to now.
// The civil calendar is now's location. Weeks start on Sunday.
// g must be valid (see ParseGranularity); unrecognized values resolve like Yearly.
func ResolveRange(g Granularity, now time.Time) TimeRange {
	year, month, day := now.Date()
	loc := now.Location()

	switch g {
	case Daily:
		return TimeRange{Start: StartOfDay(now), End: EndOfDay(now)}
	case Weekly:
		start := time.Date(year, month, day-int(now.Weekday()), 0, 0, 0, 0, loc)
		return TimeRange{Start: start, End: EndOfDay(start.AddDate(0, 0, 6))}
	case Monthly:
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		last := time.Date(year, month, DaysIn(year, month), 0, 0, 0, 0, loc)
		return TimeRange{Start: start, End: EndOfDay(last)}
	default:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		last := time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
		return TimeRange{Start: start, End: EndOfDay(last)}
	}
}
