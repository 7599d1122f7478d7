package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/generic"
	"github.com/warp/leave-planner/store/sqlite"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func record(region string, day generic.TimePoint, name string, recurring bool) sqlite.Record {
	return sqlite.Record{
		ID:        uuid.NewString(),
		Region:    region,
		Date:      day,
		Name:      name,
		Recurring: recurring,
	}
}

func save(ctx context.Context, store *sqlite.Store, r sqlite.Record) error {
	_, err := store.SaveHoliday(ctx, r)
	return err
}

func TestStore_SaveAndList(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	// GIVEN: one regional holiday and one for every region
	require.NoError(t, save(ctx, store, record(calendar.RegionScotland, generic.NewTimePoint(2025, time.July, 14), "Glasgow Fair", false)))
	require.NoError(t, save(ctx, store, record("", generic.NewTimePoint(2025, time.December, 24), "Office closed", true)))

	// WHEN: listing for Scotland and for England
	scot, err := store.ListHolidays(ctx, calendar.RegionScotland)
	require.NoError(t, err)
	eng, err := store.ListHolidays(ctx, calendar.RegionEnglandWales)
	require.NoError(t, err)

	// THEN: the all-region row shows up in both
	require.Len(t, scot, 2)
	assert.Equal(t, "Glasgow Fair", scot[0].Name)
	assert.Equal(t, "Office closed", scot[1].Name)
	assert.True(t, scot[1].Recurring)
	assert.False(t, scot[1].CreatedAt.IsZero())

	require.Len(t, eng, 1)
	assert.Equal(t, "Office closed", eng[0].Name)
}

func TestStore_SaveIsIdempotentOnNaturalKey(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	day := generic.NewTimePoint(2025, time.July, 14)

	first := record(calendar.RegionScotland, day, "Glasgow Fair", false)
	firstID, err := store.SaveHoliday(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first.ID, firstID)

	againID, err := store.SaveHoliday(ctx, record(calendar.RegionScotland, day, "Glasgow Fair", true))
	require.NoError(t, err)
	assert.Equal(t, firstID, againID)

	got, err := store.ListHolidays(ctx, calendar.RegionScotland)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Recurring)
}

func TestStore_DeleteHoliday(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	r := record("", generic.NewTimePoint(2025, time.December, 24), "Office closed", false)
	_, err := store.SaveHoliday(ctx, r)
	require.NoError(t, err)

	require.NoError(t, store.DeleteHoliday(ctx, r.ID))

	err = store.DeleteHoliday(ctx, r.ID)
	assert.ErrorIs(t, err, generic.ErrHolidayNotFound)
	assert.True(t, generic.IsNotFound(err))
}

func TestStore_CustomHolidays_YearFiltering(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	// GIVEN: a one-off 2024 holiday and a recurring one first saved in 2024
	require.NoError(t, save(ctx, store, record("", generic.NewTimePoint(2024, time.August, 30), "Summer shutdown", false)))
	require.NoError(t, save(ctx, store, record("", generic.NewTimePoint(2024, time.December, 24), "Office closed", true)))

	// WHEN: asking for 2025
	got, err := store.CustomHolidays(2025, calendar.RegionEnglandWales)
	require.NoError(t, err)

	// THEN: only the recurring one, moved into 2025
	require.Len(t, got, 1)
	assert.Equal(t, generic.NewTimePoint(2025, time.December, 24), got[0].Date)
	assert.True(t, got[0].Custom)

	got, err = store.CustomHolidays(2024, calendar.RegionEnglandWales)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStore_FeedsLayeredCalendar(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, save(ctx, store, record(calendar.RegionEnglandWales, generic.NewTimePoint(2025, time.December, 24), "Office closed", false)))

	cal := calendar.NewLayered(calendar.NewStatic(), zerolog.Nop(), store)

	days := cal.HolidaysFor(2025, "England & Wales")
	assert.True(t, days.Has(generic.NewTimePoint(2025, time.December, 24)))
	assert.True(t, days.Has(generic.NewTimePoint(2025, time.December, 25)))

	// Other regions do not see it.
	assert.False(t, cal.HolidaysFor(2025, calendar.RegionScotland).Has(generic.NewTimePoint(2025, time.December, 24)))
}
