package planner

import (
	"strings"
	"time"
)

// =============================================================================
// LOOKUP TABLES - Fixed label -> score and keyword -> range mappings
// =============================================================================

// MidScore is the default for every stress-like field ("Moderate").
const MidScore = 3

// BreakLength maps a phrase in the preferred break type to a base break
// length in leave days. Entries are matched in order; first hit wins.
type BreakLength struct {
	Keyword string
	Days    int
}

// SeasonKeyword maps a phrase in the seasonal preference to a month range.
type SeasonKeyword struct {
	Keyword string
	Months  []time.Month
}

// Tables holds every literal phrase the planner understands. Swap it to
// localize without touching strategy logic.
type Tables struct {
	HolidayStress  map[string]int // pre/post holiday stress, 5-point
	BreakAnxiety   map[string]int // 3-point
	BreakNecessity map[string]int // 5-point
	BreakLengths   []BreakLength
	ShortBreakDays int
	Seasons        []SeasonKeyword
}

// DefaultTables returns the English tables. Each call returns a fresh copy.
func DefaultTables() *Tables {
	return &Tables{
		HolidayStress: map[string]int{
			"very low":  1,
			"low":       2,
			"moderate":  3,
			"high":      4,
			"very high": 5,
		},
		BreakAnxiety: map[string]int{
			"no":         1,
			"not at all": 1,
			"sometimes":  3,
			"somewhat":   3,
			"moderate":   3,
			"yes":        5,
			"very much":  5,
		},
		BreakNecessity: map[string]int{
			"not necessary":        1,
			"slightly necessary":   2,
			"moderately necessary": 3,
			"very necessary":       4,
			"essential":            5,
		},
		BreakLengths: []BreakLength{
			{Keyword: "long weekend", Days: 1},
			{Keyword: "fortnight", Days: 10},
			{Keyword: "two weeks", Days: 10},
			{Keyword: "long", Days: 7},
			{Keyword: "week", Days: 7},
			{Keyword: "extended", Days: 7},
		},
		ShortBreakDays: 3,
		Seasons: []SeasonKeyword{
			{Keyword: "January - March", Months: months(1, 2, 3)},
			{Keyword: "April - June", Months: months(4, 5, 6)},
			{Keyword: "July - September", Months: months(7, 8, 9)},
			{Keyword: "October - December", Months: months(10, 11, 12)},
			{Keyword: "Start of the year", Months: months(1, 2)},
			{Keyword: "Mid-year", Months: months(6, 7)},
			{Keyword: "End of the year", Months: months(11, 12)},
			{Keyword: "Spring", Months: months(3, 4, 5)},
			{Keyword: "Summer", Months: months(6, 7, 8)},
			{Keyword: "Autumn", Months: months(9, 10, 11)},
			{Keyword: "Fall", Months: months(9, 10, 11)},
			{Keyword: "Winter", Months: months(1, 2)},
			{Keyword: "Christmas", Months: months(12)},
		},
	}
}

func months(ms ...int) []time.Month {
	out := make([]time.Month, len(ms))
	for i, m := range ms {
		out[i] = time.Month(m)
	}
	return out
}

// lookupScore resolves a label case-insensitively, defaulting to MidScore.
func lookupScore(table map[string]int, label string) int {
	if v, ok := table[strings.ToLower(strings.TrimSpace(label))]; ok {
		return v
	}
	return MidScore
}

// baseBreakLength picks the base break length for a preferred break type.
func (t *Tables) baseBreakLength(preferred string) int {
	text := strings.ToLower(preferred)
	for _, bl := range t.BreakLengths {
		if strings.Contains(text, bl.Keyword) {
			return bl.Days
		}
	}
	return t.ShortBreakDays
}

// matchKey folds case and whitespace so "July-September" matches "July - September".
func matchKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}
