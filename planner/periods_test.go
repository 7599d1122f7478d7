package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-planner/generic"
	"github.com/warp/leave-planner/planner"
)

func span(year int, fromMonth time.Month, fromDay int, toMonth time.Month, toDay int) generic.Period {
	return generic.Period{Start: date(year, fromMonth, fromDay), End: date(year, toMonth, toDay)}
}

func TestPeriodsFor_NoKeywordFallsBackToQuarters(t *testing.T) {
	for _, text := range []string{"", "whenever", "no preference really"} {
		periods := planner.PeriodsFor(2025, text)

		require.Len(t, periods, 4, text)
		assert.Equal(t, span(2025, time.January, 1, time.March, 31), periods[0].Period)
		assert.Equal(t, span(2025, time.April, 1, time.June, 30), periods[1].Period)
		assert.Equal(t, span(2025, time.July, 1, time.September, 30), periods[2].Period)
		assert.Equal(t, span(2025, time.October, 1, time.December, 31), periods[3].Period)
	}
}

func TestPeriodsFor_FollowsTableOrder(t *testing.T) {
	// GIVEN: Summer mentioned before the month range
	periods := planner.PeriodsFor(2025, "summer, or maybe july-September")

	// THEN: table order wins, month range first
	require.Len(t, periods, 2)
	assert.Equal(t, "July - September", periods[0].Label)
	assert.Equal(t, span(2025, time.July, 1, time.September, 30), periods[0].Period)
	assert.Equal(t, "Summer", periods[1].Label)
	assert.Equal(t, span(2025, time.June, 1, time.August, 31), periods[1].Period)
}

func TestPeriodsFor_DuplicateWindowsCollapse(t *testing.T) {
	periods := planner.PeriodsFor(2025, "Autumn (or Fall)")

	require.Len(t, periods, 1)
	assert.Equal(t, span(2025, time.September, 1, time.November, 30), periods[0].Period)
}

func TestPeriodsFor_MonthEnds(t *testing.T) {
	assert.Equal(t, span(2024, time.January, 1, time.February, 29), planner.PeriodsFor(2024, "Start of the year")[0].Period)
	assert.Equal(t, span(2025, time.January, 1, time.February, 28), planner.PeriodsFor(2025, "start of the YEAR")[0].Period)
	assert.Equal(t, span(2025, time.December, 1, time.December, 31), planner.PeriodsFor(2025, "Christmas")[0].Period)
}

func TestPeriodsFor_CustomTables(t *testing.T) {
	tables := planner.DefaultTables()
	tables.Seasons = []planner.SeasonKeyword{{Keyword: "Sommer", Months: []time.Month{time.June, time.July, time.August}}}

	periods := tables.PeriodsFor(2025, "Im Sommer")

	require.Len(t, periods, 1)
	assert.Equal(t, span(2025, time.June, 1, time.August, 31), periods[0].Period)
	assert.Len(t, tables.PeriodsFor(2025, "Summer"), 4)
}
