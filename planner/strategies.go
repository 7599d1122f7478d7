/*
strategies.go - The three leave placement heuristics

PURPOSE:
  Each strategy builds one RecommendedPlan from the same planContext using a
  different anchoring idea:

    holidayExtension     grow a break outward from a holiday or blackout day
    specialDateAnchored  centre a break on a user's special date
    seasonalBalanced     spread single days across preferred seasons

CANDIDATE RANKING (holiday and special-date strategies):
  1. Highest ConsecutiveRest score
  2. Fewest leave days
  3. Longest run containing a leave day
  Remaining ties keep the earliest candidate found.

INVARIANTS:
  - Leave dates are weekdays, inside the plan year, never blackout days
  - len(leave dates) <= leave balance
  - No feasible candidate yields EmptyPlan

SEE ALSO:
  - rest.go: scoring
  - periods.go: seasonal windows
  - engine.go: orchestration and descriptions
*/
package planner

import (
	"sort"

	"github.com/warp/leave-planner/generic"
)

// minSeasonalSpacing is the minimum gap in days between two seasonal picks.
const minSeasonalSpacing = 7

// Rest-potential look-around limits for seasonal scoring.
const (
	potentialLookBack  = 3
	potentialLookAhead = 6
)

// planContext is everything a strategy needs for one (profile, year).
type planContext struct {
	profile  PreferenceProfile
	year     int
	blackout generic.DateSet // public holidays merged with blackout dates
	rest     *restIndex
	target   int
	tables   *Tables
}

func newPlanContext(profile PreferenceProfile, year int, holidays generic.DateSet, tables *Tables) *planContext {
	blackout := holidays.Clone()
	for _, d := range profile.BlackoutDates {
		blackout.Add(d)
	}
	return &planContext{
		profile:  profile,
		year:     year,
		blackout: blackout,
		rest:     newRestIndex(blackout, year),
		target:   profile.TargetBreakLength(),
		tables:   tables,
	}
}

func (c *planContext) inYear(d generic.TimePoint) bool { return d.Year() == c.year }

// isLeaveable is true for weekdays that are not blackout days.
func (c *planContext) isLeaveable(d generic.TimePoint) bool {
	return !d.IsWeekend() && !c.blackout.Has(d)
}

func (c *planContext) emptyPlan() RecommendedPlan {
	return EmptyPlan(c.profile)
}

func (c *planContext) plan(days []generic.TimePoint) RecommendedPlan {
	days = generic.UniqueSorted(days)
	p := c.emptyPlan()
	p.LeaveDates = days
	p.LeaveDaysUsed = len(days)
	p.RemainingBalance = c.profile.LeaveBalance - len(days)
	p.TotalRestDays = c.rest.score(days)
	p.LongestRun = c.rest.longestLeaveRun(days)
	return p
}

// =============================================================================
// CANDIDATES
// =============================================================================

type candidate struct {
	days    []generic.TimePoint
	score   int
	longest int
}

func (c *planContext) evaluate(days []generic.TimePoint) candidate {
	return candidate{days: days, score: c.rest.score(days), longest: c.rest.longestLeaveRun(days)}
}

func (a candidate) betterThan(b candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if len(a.days) != len(b.days) {
		return len(a.days) < len(b.days)
	}
	return a.longest > b.longest
}

type bestTracker struct {
	best *candidate
}

func (t *bestTracker) offer(c candidate) {
	if t.best == nil || c.betterThan(*t.best) {
		t.best = &c
	}
}

// =============================================================================
// HOLIDAY EXTENSION
// =============================================================================

func holidayExtension(c *planContext) RecommendedPlan {
	maxExtension := min(c.target, c.profile.LeaveBalance)
	var tracker bestTracker
	for _, anchor := range c.blackout.Sorted() {
		if !c.inYear(anchor) {
			continue
		}
		for n := 1; n <= maxExtension; n++ {
			for _, step := range []int{-1, 1} {
				if days := c.collectLeaveable(anchor, step, n); days != nil {
					tracker.offer(c.evaluate(days))
				}
			}
		}
	}
	if tracker.best == nil {
		return c.emptyPlan()
	}
	return c.plan(tracker.best.days)
}

// collectLeaveable walks away from anchor one day at a time, collecting n
// leaveable days. Weekends and blackout days are passed over. Returns nil
// when the year ends first.
func (c *planContext) collectLeaveable(anchor generic.TimePoint, step, n int) []generic.TimePoint {
	days := make([]generic.TimePoint, 0, n)
	for d := anchor.AddDays(step); c.inYear(d) && len(days) < n; d = d.AddDays(step) {
		if c.isLeaveable(d) {
			days = append(days, d)
		}
	}
	if len(days) < n {
		return nil
	}
	generic.SortDays(days)
	return days
}

// =============================================================================
// SPECIAL-DATE ANCHORED
// =============================================================================

func specialDateAnchored(c *planContext) RecommendedPlan {
	var specials []generic.TimePoint
	for _, d := range c.profile.SpecialDates {
		if c.inYear(d) {
			specials = append(specials, d)
		}
	}
	if len(specials) == 0 {
		return holidayExtension(c)
	}
	if c.profile.LeaveBalance == 0 {
		return c.emptyPlan()
	}

	var tracker bestTracker
	for _, special := range specials {
		for length := 1; length <= c.target; length++ {
			start := special.AddDays(-(length / 2))
			var days []generic.TimePoint
			for i := 0; i < length; i++ {
				d := start.AddDays(i)
				if c.inYear(d) && c.isLeaveable(d) {
					days = append(days, d)
				}
			}
			if c.isLeaveable(special) && !containsDay(days, special) {
				days = append(days, special)
				generic.SortDays(days)
			}
			days = truncateOldest(days, c.profile.LeaveBalance, special)
			if len(days) == 0 {
				continue
			}
			tracker.offer(c.evaluate(days))
		}
	}
	if tracker.best == nil {
		return c.emptyPlan()
	}
	return c.plan(tracker.best.days)
}

// truncateOldest drops the earliest days, sparing keep, until at most limit remain.
func truncateOldest(days []generic.TimePoint, limit int, keep generic.TimePoint) []generic.TimePoint {
	for len(days) > limit {
		i := 0
		if days[0].Equal(keep) && len(days) > 1 {
			i = 1
		}
		days = append(days[:i:i], days[i+1:]...)
	}
	return days
}

func containsDay(days []generic.TimePoint, d generic.TimePoint) bool {
	for _, x := range days {
		if x.Equal(d) {
			return true
		}
	}
	return false
}

// =============================================================================
// SEASONALLY BALANCED
// =============================================================================

func seasonalBalanced(c *planContext) RecommendedPlan {
	periods := c.tables.PeriodsFor(c.year, c.profile.SeasonalPreference)
	if len(periods) == 0 {
		periods = Quarters(c.year)
	}
	budget := min(c.profile.LeaveBalance, c.target*len(periods))
	if budget == 0 {
		return c.emptyPlan()
	}
	perPeriod, extra := budget/len(periods), budget%len(periods)

	var chosen []generic.TimePoint
	for i, period := range periods {
		quota := perPeriod
		if i < extra {
			quota++
		}
		if quota == 0 {
			continue
		}

		type scored struct {
			day       generic.TimePoint
			potential int
		}
		var candidates []scored
		for _, d := range period.Days() {
			if c.inYear(d) && c.isLeaveable(d) && !containsDay(chosen, d) {
				candidates = append(candidates, scored{day: d, potential: c.restPotential(d)})
			}
		}
		// Stable: equal potential keeps chronological order.
		sort.SliceStable(candidates, func(a, b int) bool {
			return candidates[a].potential > candidates[b].potential
		})

		picked := 0
		for _, cand := range candidates {
			if picked == quota {
				break
			}
			if tooClose(cand.day, chosen) {
				continue
			}
			chosen = append(chosen, cand.day)
			picked++
		}
	}
	if len(chosen) == 0 {
		return c.emptyPlan()
	}
	return c.plan(chosen)
}

// restPotential counts the unbroken non-working days just before (up to 3)
// and just after (up to 6) d.
func (c *planContext) restPotential(d generic.TimePoint) int {
	potential := 0
	for i := 1; i <= potentialLookBack && !c.isLeaveable(d.AddDays(-i)); i++ {
		potential++
	}
	for i := 1; i <= potentialLookAhead && !c.isLeaveable(d.AddDays(i)); i++ {
		potential++
	}
	return potential
}

func tooClose(d generic.TimePoint, chosen []generic.TimePoint) bool {
	for _, x := range chosen {
		gap := generic.DaysBetween(x, d)
		if gap < 0 {
			gap = -gap
		}
		if gap < minSeasonalSpacing {
			return true
		}
	}
	return false
}
