/*
Package generic provides the date primitives shared by the calendar and
planner packages.

PURPOSE:
  Leave planning works on whole calendar days. Everything here is day
  granularity, UTC, and comparable so dates can be used directly as map keys.

KEY CONCEPTS:
  - TimePoint: a calendar day (midnight UTC)
  - DateSet:   an unordered set of days with a deterministic sorted view
  - Period:    an inclusive [Start, End] window of days (period.go)

SEE ALSO:
  - period.go: Period type and year/month helpers
  - errors.go: ParseError and sentinel errors
*/
package generic

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used on every boundary.
const DateLayout = "2006-01-02"

// =============================================================================
// TIME POINT - A single calendar day
// =============================================================================

// TimePoint is a calendar day. The zero value is not a valid day.
type TimePoint struct {
	Time time.Time
}

func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its calendar day in t's own location.
func FromTime(t time.Time) TimePoint {
	return NewTimePoint(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp.
func ParseDate(s string) (TimePoint, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return FromTime(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FromTime(t), nil
	}
	return TimePoint{}, &ParseError{Value: s}
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.Time.Before(other.Time) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.Time.Equal(other.Time) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.Time.After(other.Time) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return !tp.After(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return !tp.Before(other) }

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint  { return TimePoint{Time: tp.Time.AddDate(0, 0, n)} }
func (tp TimePoint) AddYears(n int) TimePoint { return TimePoint{Time: tp.Time.AddDate(n, 0, 0)} }

// Properties
func (tp TimePoint) Year() int             { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month     { return tp.Time.Month() }
func (tp TimePoint) Day() int              { return tp.Time.Day() }
func (tp TimePoint) Weekday() time.Weekday { return tp.Time.Weekday() }
func (tp TimePoint) IsZero() bool          { return tp.Time.IsZero() }
func (tp TimePoint) IsWeekend() bool {
	wd := tp.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (tp TimePoint) String() string { return tp.Time.Format(DateLayout) }

func (tp TimePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(tp.String())
}

func (tp *TimePoint) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*tp = parsed
	return nil
}

// DaysBetween returns the signed number of days from one day to another.
func DaysBetween(from, to TimePoint) int {
	return int(to.Time.Sub(from.Time).Hours() / 24)
}

// =============================================================================
// DATE SET
// =============================================================================

// DateSet is a set of calendar days.
type DateSet map[TimePoint]struct{}

func NewDateSet(days ...TimePoint) DateSet {
	s := make(DateSet, len(days))
	for _, d := range days {
		s.Add(d)
	}
	return s
}

func (s DateSet) Add(d TimePoint)      { s[d] = struct{}{} }
func (s DateSet) Has(d TimePoint) bool { _, ok := s[d]; return ok }
func (s DateSet) Len() int             { return len(s) }

// Merge adds every day of other into s.
func (s DateSet) Merge(other DateSet) {
	for d := range other {
		s.Add(d)
	}
}

func (s DateSet) Clone() DateSet {
	c := make(DateSet, len(s))
	c.Merge(s)
	return c
}

// Sorted returns the days in chronological order.
func (s DateSet) Sorted() []TimePoint {
	out := make([]TimePoint, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	SortDays(out)
	return out
}

// SortDays sorts days chronologically in place.
func SortDays(days []TimePoint) {
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
}

// UniqueSorted returns a sorted copy of days with duplicates removed.
func UniqueSorted(days []TimePoint) []TimePoint {
	return NewDateSet(days...).Sorted()
}
