package planner

import "github.com/warp/leave-planner/generic"

// =============================================================================
// REST AGGREGATOR
// =============================================================================

// ConsecutiveRest sums the lengths of every maximal run of consecutive rest
// days in year, where rest days are weekends, blackout dates (holidays
// included) and the given leave dates.
//
// The metric measures the effect of taking leave: with no leave dates it
// returns 0 rather than the weekend/holiday baseline.
func ConsecutiveRest(leaveDates []generic.TimePoint, blackoutDates generic.DateSet, year int) int {
	return newRestIndex(blackoutDates, year).score(leaveDates)
}

// RestRuns returns the maximal runs of consecutive rest days in
// chronological order, or nil when leaveDates is empty.
func RestRuns(leaveDates []generic.TimePoint, blackoutDates generic.DateSet, year int) []generic.Period {
	return newRestIndex(blackoutDates, year).runs(leaveDates)
}

// restIndex caches the weekend and blackout days of one year so strategies
// can score many candidate leave sets without rebuilding the baseline.
type restIndex struct {
	base generic.DateSet
}

func newRestIndex(blackoutDates generic.DateSet, year int) *restIndex {
	base := make(generic.DateSet, 128)
	for _, d := range generic.YearPeriod(year).Days() {
		if d.IsWeekend() || blackoutDates.Has(d) {
			base.Add(d)
		}
	}
	return &restIndex{base: base}
}

func (ri *restIndex) runs(leaveDates []generic.TimePoint) []generic.Period {
	if len(leaveDates) == 0 {
		return nil
	}
	rest := ri.base.Clone()
	for _, d := range leaveDates {
		rest.Add(d)
	}
	days := rest.Sorted()

	var runs []generic.Period
	start, prev := days[0], days[0]
	for _, d := range days[1:] {
		if generic.DaysBetween(prev, d) == 1 {
			prev = d
			continue
		}
		runs = append(runs, generic.Period{Start: start, End: prev})
		start, prev = d, d
	}
	return append(runs, generic.Period{Start: start, End: prev})
}

func (ri *restIndex) score(leaveDates []generic.TimePoint) int {
	total := 0
	for _, r := range ri.runs(leaveDates) {
		total += r.Len()
	}
	return total
}

// longestLeaveRun is the longest run that contains at least one leave day.
func (ri *restIndex) longestLeaveRun(leaveDates []generic.TimePoint) int {
	longest := 0
	for _, r := range ri.runs(leaveDates) {
		for _, d := range leaveDates {
			if r.Contains(d) {
				longest = max(longest, r.Len())
				break
			}
		}
	}
	return longest
}
