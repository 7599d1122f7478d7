package generic

import "time"

// =============================================================================
// PERIOD - An inclusive window of days
// =============================================================================

// Period is an inclusive window of calendar days [Start, End].
//
// Examples:
//   - Calendar year 2025: Jan 1 - Dec 31
//   - Summer: Jun 1 - Aug 31
//   - A rest run: Thu Dec 25 - Sun Dec 28
type Period struct {
	Start TimePoint `json:"start"`
	End   TimePoint `json:"end"`
}

// Contains returns true if the day is within the period [Start, End].
func (p Period) Contains(t TimePoint) bool {
	return t.AfterOrEqual(p.Start) && t.BeforeOrEqual(p.End)
}

// Days returns all days in the period.
func (p Period) Days() []TimePoint {
	var days []TimePoint
	for current := p.Start; current.BeforeOrEqual(p.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

// Len is the number of days in the period, zero if End precedes Start.
func (p Period) Len() int {
	if p.End.Before(p.Start) {
		return 0
	}
	return DaysBetween(p.Start, p.End) + 1
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// YEAR / MONTH HELPERS
// =============================================================================

func StartOfYear(year int) TimePoint { return NewTimePoint(year, time.January, 1) }
func EndOfYear(year int) TimePoint   { return NewTimePoint(year, time.December, 31) }

// YearPeriod covers every day of the calendar year.
func YearPeriod(year int) Period {
	return Period{Start: StartOfYear(year), End: EndOfYear(year)}
}

func StartOfMonth(year int, month time.Month) TimePoint { return NewTimePoint(year, month, 1) }

// EndOfMonth is the first day of the following month minus one day.
// December is pinned to Dec 31 so the result never leaves the year.
func EndOfMonth(year int, month time.Month) TimePoint {
	if month == time.December {
		return EndOfYear(year)
	}
	return StartOfMonth(year, month+1).AddDays(-1)
}
