package analytics

import "time"

// Label layouts. Day-level periods use the en-PH short date; yearly
// periods are labelled by abbreviated month and year.
const (
	DayLabelLayout   = "01/02/2006"
	MonthLabelLayout = "Jan 2006"
)

// GeneratePeriods splits r into the ordered, contiguous periods for g:
// one period for Daily, one per civil day for Weekly and Monthly, and one
// per calendar month for Yearly. The first period starts at r.Start and
// the last ends at r.End.
func GeneratePeriods(r TimeRange, g Granularity) []Period {
	switch g {
	case Daily:
		return []Period{{
			Index: 0,
			Label: r.Start.Format(DayLabelLayout),
			Start: r.Start,
			End:   r.End,
		}}
	case Weekly, Monthly:
		return dayPeriods(r)
	default:
		return monthPeriods(r)
	}
}

// dayPeriods emits one period per civil day touched by r.
func dayPeriods(r TimeRange) []Period {
	year, month, day := r.Start.Date()
	loc := r.Start.Location()

	var periods []Period
	for i := 0; ; i++ {
		start := time.Date(year, month, day+i, 0, 0, 0, 0, loc)
		if start.After(r.End) {
			break
		}
		periods = append(periods, clampPeriod(r, len(periods), start, EndOfDay(start), DayLabelLayout))
	}
	return periods
}

// monthPeriods emits one period per calendar month touched by r.
func monthPeriods(r TimeRange) []Period {
	year, month, _ := r.Start.Date()
	loc := r.Start.Location()

	var periods []Period
	for i := 0; ; i++ {
		start := time.Date(year, month+time.Month(i), 1, 0, 0, 0, 0, loc)
		if start.After(r.End) {
			break
		}
		last := time.Date(year, month+time.Month(i)+1, 0, 0, 0, 0, 0, loc)
		periods = append(periods, clampPeriod(r, len(periods), start, EndOfDay(last), MonthLabelLayout))
	}
	return periods
}

// clampPeriod trims [start, end] to r so the sequence tiles r exactly even
// when r does not begin or end on a period boundary.
func clampPeriod(r TimeRange, index int, start, end time.Time, layout string) Period {
	if start.Before(r.Start) {
		start = r.Start
	}
	if end.After(r.End) {
		end = r.End
	}
	return Period{
		Index: index,
		Label: start.Format(layout),
		Start: start,
		End:   end,
	}
}
