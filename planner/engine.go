/*
engine.go - Plan orchestration

PURPOSE:
  Normalizes a payload once, fetches the year's holidays once, then runs
  every strategy against the same profile and returns strategy -> plan.

DETERMINISM:
  The engine is a pure function of (payload, year, today, calendar).
  Inject Now in tests to pin "today".

FAILURE ISOLATION:
  A strategy that panics is logged and replaced by the empty plan; the
  other strategies still run. Only normalization errors are returned.

CONCURRENCY:
  Engine holds no mutable state. One instance may serve many goroutines
  as long as its Calendar and Recorder are safe for concurrent use.

SEE ALSO:
  - profile.go: normalization
  - strategies.go: the heuristics
*/
package planner

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/generic"
	"github.com/warp/leave-planner/metrics"
)

type strategy struct {
	name        string
	description string
	run         func(*planContext) RecommendedPlan
}

var strategies = []strategy{
	{
		name:        StrategyHolidayExtension,
		description: "Extends public holidays and blackout days with adjacent leave to build the longest uninterrupted break for the fewest leave days.",
		run:         holidayExtension,
	},
	{
		name:        StrategySpecialDateAnchored,
		description: "Centres a break on your special dates so the occasions you care about fall inside time off.",
		run:         specialDateAnchored,
	},
	{
		name:        StrategySeasonalBalanced,
		description: "Spreads single leave days across your preferred seasons, next to weekends and holidays, so rest comes regularly through the year.",
		run:         seasonalBalanced,
	},
}

// StrategyNames lists the result keys in execution order.
func StrategyNames() []string {
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.name
	}
	return names
}

// Engine produces leave plans.
type Engine struct {
	Calendar   calendar.Provider
	Normalizer *Normalizer
	Recorder   metrics.Recorder
	Logger     zerolog.Logger
	Now        func() time.Time
}

// NewEngine wires an engine with a no-op recorder and the wall clock.
func NewEngine(cal calendar.Provider, normalizer *Normalizer, logger zerolog.Logger) *Engine {
	if normalizer == nil {
		normalizer = NewNormalizer(nil, 0, "")
	}
	return &Engine{
		Calendar:   cal,
		Normalizer: normalizer,
		Recorder:   metrics.NopRecorder{},
		Logger:     logger,
		Now:        time.Now,
	}
}

// Normalize builds a profile relative to the engine's clock.
func (e *Engine) Normalize(payload Payload) (PreferenceProfile, error) {
	return e.Normalizer.Normalize(payload, generic.FromTime(e.Now()))
}

// GenerateAllPlans runs every strategy for year. A year of 0 means the
// current year.
func (e *Engine) GenerateAllPlans(payload Payload, year int) (map[string]RecommendedPlan, error) {
	today := generic.FromTime(e.Now())
	if year == 0 {
		year = today.Year()
	}

	profile, err := e.Normalizer.Normalize(payload, today)
	if err != nil {
		return nil, err
	}

	holidays := e.Calendar.HolidaysFor(year, profile.CountryRegion)
	ctx := newPlanContext(profile, year, holidays, e.Normalizer.Tables)

	log := e.Logger.With().Int("year", year).Str("region", calendar.ResolveRegion(profile.CountryRegion)).Logger()
	log.Debug().
		Int("leave_balance", profile.LeaveBalance).
		Int("target_break_length", ctx.target).
		Int("blackout_days", ctx.blackout.Len()).
		Msg("generating leave plans")

	plans := make(map[string]RecommendedPlan, len(strategies))
	for _, s := range strategies {
		plan := e.runStrategy(log, s, ctx)
		plan.Strategy = s.name
		plan.Description = s.description
		plans[s.name] = plan

		e.Recorder.RecordPlan(metrics.PlanResult{
			Strategy:  s.name,
			Feasible:  plan.Feasible(),
			RestDays:  plan.TotalRestDays,
			LeaveDays: plan.LeaveDaysUsed,
		})
		log.Debug().
			Str("strategy", s.name).
			Int("leave_days", plan.LeaveDaysUsed).
			Int("rest_days", plan.TotalRestDays).
			Int("longest_run", plan.LongestRun).
			Msg("strategy finished")
	}
	return plans, nil
}

func (e *Engine) runStrategy(log zerolog.Logger, s strategy, ctx *planContext) (plan RecommendedPlan) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("strategy", s.name).Interface("panic", r).Msg("strategy failed, returning empty plan")
			plan = ctx.emptyPlan()
		}
	}()
	return s.run(ctx)
}
