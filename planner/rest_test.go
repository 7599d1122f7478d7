package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-planner/generic"
	"github.com/warp/leave-planner/planner"
)

// 2025 starts on a Wednesday: 52 Saturdays and 52 Sundays.
const weekendDays2025 = 104

func christmasSet() generic.DateSet {
	return generic.NewDateSet(date(2025, time.December, 25))
}

func TestConsecutiveRest_EmptyLeaveIsZero(t *testing.T) {
	assert.Equal(t, 0, planner.ConsecutiveRest(nil, christmasSet(), 2025))
	assert.Equal(t, 0, planner.ConsecutiveRest([]generic.TimePoint{}, generic.NewDateSet(), 2025))
	assert.Nil(t, planner.RestRuns(nil, christmasSet(), 2025))
}

func TestConsecutiveRest_CountsUnion(t *testing.T) {
	leave := []generic.TimePoint{date(2025, time.December, 26)}

	got := planner.ConsecutiveRest(leave, christmasSet(), 2025)

	assert.Equal(t, weekendDays2025+2, got)
}

func TestConsecutiveRest_LeaveOnRestDayIsNotDoubleCounted(t *testing.T) {
	leave := []generic.TimePoint{
		date(2025, time.December, 27), // Saturday
		date(2025, time.December, 25), // holiday
	}

	assert.Equal(t, weekendDays2025+1, planner.ConsecutiveRest(leave, christmasSet(), 2025))
}

func TestConsecutiveRest_OrderIndependent(t *testing.T) {
	a := []generic.TimePoint{date(2025, time.March, 3), date(2025, time.July, 18), date(2025, time.March, 4)}
	b := []generic.TimePoint{date(2025, time.March, 4), date(2025, time.March, 3), date(2025, time.July, 18), date(2025, time.March, 3)}

	assert.Equal(t,
		planner.ConsecutiveRest(a, christmasSet(), 2025),
		planner.ConsecutiveRest(b, christmasSet(), 2025))
}

func TestConsecutiveRest_AdjacentLeaveNeverDecreases(t *testing.T) {
	leave := []generic.TimePoint{date(2025, time.December, 26)}
	before := planner.ConsecutiveRest(leave, christmasSet(), 2025)

	// Monday after the Christmas weekend joins the same run.
	after := planner.ConsecutiveRest(append(leave, date(2025, time.December, 29)), christmasSet(), 2025)

	assert.GreaterOrEqual(t, after, before)
	assert.Equal(t, before+1, after)
}

func TestRestRuns_Boundaries(t *testing.T) {
	leave := []generic.TimePoint{date(2025, time.December, 26)}

	runs := planner.RestRuns(leave, christmasSet(), 2025)
	require.NotEmpty(t, runs)

	christmasRun := generic.Period{Start: date(2025, time.December, 25), End: date(2025, time.December, 28)}
	assert.Contains(t, runs, christmasRun)

	// First run is the first weekend of the year, last run is Christmas.
	assert.Equal(t, generic.Period{Start: date(2025, time.January, 4), End: date(2025, time.January, 5)}, runs[0])
	assert.Equal(t, christmasRun, runs[len(runs)-1])

	total := 0
	for _, r := range runs {
		total += r.Len()
	}
	assert.Equal(t, planner.ConsecutiveRest(leave, christmasSet(), 2025), total)
}
