package calendar

import (
	"time"

	"github.com/warp/leave-planner/generic"
)

// =============================================================================
// HOLIDAY RULES
// =============================================================================

// Rule produces zero or more named holidays for a year.
type Rule interface {
	Apply(year int) []Holiday
}

// fixedRule is a fixed month/day moved to the next Monday when it falls on a weekend.
type fixedRule struct {
	name  string
	month time.Month
	day   int
}

func (r fixedRule) Apply(year int) []Holiday {
	d := generic.NewTimePoint(year, r.month, r.day)
	switch d.Weekday() {
	case time.Saturday:
		d = d.AddDays(2)
	case time.Sunday:
		d = d.AddDays(1)
	}
	return []Holiday{{Date: d, Name: r.name}}
}

// pairRule is two consecutive fixed days (Christmas and Boxing Day, 1 and 2
// January). When either lands on a weekend both are shifted so they stay on
// distinct working days.
type pairRule struct {
	first, second string
	month         time.Month
	day           int
}

func (r pairRule) Apply(year int) []Holiday {
	d1 := generic.NewTimePoint(year, r.month, r.day)
	d2 := d1.AddDays(1)
	switch d1.Weekday() {
	case time.Friday:
		d2 = d1.AddDays(3)
	case time.Saturday:
		d1, d2 = d1.AddDays(2), d1.AddDays(3)
	case time.Sunday:
		d1 = d1.AddDays(2)
	}
	return []Holiday{{Date: d1, Name: r.first}, {Date: d2, Name: r.second}}
}

// easterRule is an offset in days from Easter Sunday.
type easterRule struct {
	name   string
	offset int
}

func (r easterRule) Apply(year int) []Holiday {
	return []Holiday{{Date: EasterSunday(year).AddDays(r.offset), Name: r.name}}
}

// weekdayRule is the nth weekday of a month; n = -1 selects the last one.
type weekdayRule struct {
	name    string
	month   time.Month
	weekday time.Weekday
	n       int
}

func (r weekdayRule) Apply(year int) []Holiday {
	if r.n < 0 {
		d := generic.EndOfMonth(year, r.month)
		for d.Weekday() != r.weekday {
			d = d.AddDays(-1)
		}
		return []Holiday{{Date: d, Name: r.name}}
	}
	d := generic.StartOfMonth(year, r.month)
	for d.Weekday() != r.weekday {
		d = d.AddDays(1)
	}
	return []Holiday{{Date: d.AddDays(7 * (r.n - 1)), Name: r.name}}
}

// movedRule wraps another rule, replacing its date in specific years.
type movedRule struct {
	Rule
	moves map[int]generic.TimePoint
}

func (r movedRule) Apply(year int) []Holiday {
	hs := r.Rule.Apply(year)
	if d, ok := r.moves[year]; ok {
		for i := range hs {
			hs[i].Date = d
		}
	}
	return hs
}

// oneOffRule is a holiday proclaimed for a single year.
type oneOffRule struct {
	name string
	date generic.TimePoint
}

func (r oneOffRule) Apply(year int) []Holiday {
	if r.date.Year() != year {
		return nil
	}
	return []Holiday{{Date: r.date, Name: r.name}}
}

// EasterSunday uses the anonymous Gregorian algorithm.
func EasterSunday(year int) generic.TimePoint {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return generic.NewTimePoint(year, time.Month(month), day)
}
