package planner

import (
	"strings"
	"time"

	"github.com/warp/leave-planner/generic"
)

// CandidatePeriod is a calendar window worth searching for leave placement.
type CandidatePeriod struct {
	generic.Period
	Label string `json:"label"`
}

// PeriodsFor scans text for season and month-range keywords and returns one
// period per matched keyword, in table order (not chronological order).
// Identical windows are reported once. With no match it returns Q1..Q4.
func (t *Tables) PeriodsFor(year int, text string) []CandidatePeriod {
	haystack := matchKey(text)
	var out []CandidatePeriod
	seen := make(map[generic.Period]bool)
	if haystack != "" {
		for _, sk := range t.Seasons {
			if len(sk.Months) == 0 || !strings.Contains(haystack, matchKey(sk.Keyword)) {
				continue
			}
			p := monthSpan(year, sk.Months[0], sk.Months[len(sk.Months)-1])
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, CandidatePeriod{Period: p, Label: sk.Keyword})
		}
	}
	if len(out) == 0 {
		return Quarters(year)
	}
	return out
}

// PeriodsFor uses the default English tables.
func PeriodsFor(year int, text string) []CandidatePeriod {
	return DefaultTables().PeriodsFor(year, text)
}

// Quarters returns the four fixed quarterly windows of a year.
func Quarters(year int) []CandidatePeriod {
	return []CandidatePeriod{
		{Period: monthSpan(year, time.January, time.March), Label: "Q1"},
		{Period: monthSpan(year, time.April, time.June), Label: "Q2"},
		{Period: monthSpan(year, time.July, time.September), Label: "Q3"},
		{Period: monthSpan(year, time.October, time.December), Label: "Q4"},
	}
}

func monthSpan(year int, first, last time.Month) generic.Period {
	return generic.Period{
		Start: generic.StartOfMonth(year, first),
		End:   generic.EndOfMonth(year, last),
	}
}
