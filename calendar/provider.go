/*
Package calendar supplies public holidays per region and year.

PURPOSE:
  The planner treats public holidays as days that are already free. This
  package answers "which days are holidays in region R during year Y" and
  never fails: unknown regions fall back to the default table.

PROVIDERS:
  Static:  rule-based UK tables (regions.go), pure and shareable
  Layered: a base provider plus extra Sources (e.g. the sqlite store of
           operator-defined holidays). A failing Source is logged and skipped.

CONCURRENCY:
  Rule tables are initialized at package load and read-only afterwards.
  Providers hold no mutable state and may be shared across goroutines.

SEE ALSO:
  - rules.go: holiday rule kinds and Easter computation
  - store/sqlite/sqlite.go: custom holiday Source
*/
package calendar

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/warp/leave-planner/generic"
)

// Holiday is a named public holiday.
type Holiday struct {
	ID     string            `json:"id,omitempty"`
	Date   generic.TimePoint `json:"date"`
	Name   string            `json:"name"`
	Region string            `json:"region"`
	Custom bool              `json:"custom,omitempty"`
}

// Provider is the engine-facing contract.
type Provider interface {
	HolidaysFor(year int, region string) generic.DateSet
}

// Lister also exposes holiday names, for display.
type Lister interface {
	Provider
	Holidays(year int, region string) []Holiday
}

// Source is an additional holiday feed merged by Layered.
type Source interface {
	CustomHolidays(year int, region string) ([]Holiday, error)
}

// =============================================================================
// STATIC PROVIDER
// =============================================================================

// Static serves the built-in rule tables.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (s *Static) Holidays(year int, region string) []Holiday {
	resolved := ResolveRegion(region)
	var out []Holiday
	for _, rule := range regionRules[resolved] {
		for _, h := range rule.Apply(year) {
			h.Region = resolved
			out = append(out, h)
		}
	}
	sortHolidays(out)
	return out
}

func (s *Static) HolidaysFor(year int, region string) generic.DateSet {
	return dateSet(s.Holidays(year, region))
}

// =============================================================================
// LAYERED PROVIDER
// =============================================================================

// Layered merges a base table with extra sources.
type Layered struct {
	Base    Lister
	Sources []Source
	Logger  zerolog.Logger
}

func NewLayered(base Lister, logger zerolog.Logger, sources ...Source) *Layered {
	return &Layered{Base: base, Sources: sources, Logger: logger}
}

func (l *Layered) Holidays(year int, region string) []Holiday {
	out := l.Base.Holidays(year, region)
	for _, src := range l.Sources {
		extra, err := src.CustomHolidays(year, ResolveRegion(region))
		if err != nil {
			l.Logger.Warn().Err(err).Int("year", year).Str("region", region).Msg("holiday source failed, skipping")
			continue
		}
		out = append(out, extra...)
	}
	sortHolidays(out)
	return out
}

func (l *Layered) HolidaysFor(year int, region string) generic.DateSet {
	return dateSet(l.Holidays(year, region))
}

func dateSet(hs []Holiday) generic.DateSet {
	set := make(generic.DateSet, len(hs))
	for _, h := range hs {
		set.Add(h.Date)
	}
	return set
}

func sortHolidays(hs []Holiday) {
	sort.SliceStable(hs, func(i, j int) bool {
		if !hs[i].Date.Equal(hs[j].Date) {
			return hs[i].Date.Before(hs[j].Date)
		}
		return hs[i].Name < hs[j].Name
	})
}
