/*
profile.go - Preference normalization

PURPOSE:
  Turns a loosely-typed Payload into an immutable PreferenceProfile.
  All defaulting and label -> score mapping happens here, once, so the
  strategies never see a missing field.

DEFAULTS:
  work_type                 "Full-time"
  stress-like fields        3 ("Moderate")
  leave_balance             25
  annual_leave_refresh_date Jan 1 next year when today is Oct-Dec,
                            otherwise Jan 1 this year

FAILURES:
  Only malformed dates (*generic.ParseError) and negative balances
  (generic.ErrNegativeBalance) are errors. Everything else falls back.

SEE ALSO:
  - payload.go: value coercion
  - tables.go: label and keyword tables
*/
package planner

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/generic"
)

const (
	DefaultLeaveBalance       = 25
	DefaultStandardAllocation = 25
	DefaultWorkType           = "Full-time"
	DefaultWorkHours          = 37
	DefaultBreakFrequency     = "Occasionally"
)

var (
	maxBalanceRatio = decimal.NewFromInt(2)
	three           = decimal.NewFromInt(3)
	nine            = decimal.NewFromInt(9)

	lowBalanceRatio    = decimal.RequireFromString("0.5")
	minBoostRatio      = decimal.RequireFromString("0.3")
	lowBalanceDampener = decimal.RequireFromString("0.8")
	nearRefreshBoost   = decimal.RequireFromString("1.2")
)

// PreferenceProfile is the normalized view of a user's preferences.
type PreferenceProfile struct {
	WorkType           string
	WorkHours          int
	BreakFrequency     string
	PreferredBreakType string

	PreHolidayStress  int
	PostHolidayStress int
	BreakAnxiety      int
	BreakNecessity    int
	OverallStress     decimal.Decimal // mean of pre, post and anxiety

	HolidayPreference  string
	SeasonalPreference string
	CountryRegion      string

	LeaveBalance           int
	AnnualLeaveRefreshDate generic.TimePoint // next occurrence on or after today
	SpecialDates           []generic.TimePoint
	BlackoutDates          []generic.TimePoint

	BalanceRatio     decimal.Decimal // leave_balance / standard allocation, in [0, 2]
	DaysUntilRefresh int
	BaseBreakLength  int
}

// TargetBreakLength scales the base break length by stress and balance
// pressure. The result is floored, so a calm or dampened profile asking for
// a short break can reach zero, which leaves every strategy with nothing to
// place.
func (p PreferenceProfile) TargetBreakLength() int {
	stressSum := decimal.NewFromInt(int64(p.PreHolidayStress + p.PostHolidayStress + p.BreakAnxiety))
	// base * (mean/3) == base * sum / 9; dividing last keeps whole results exact.
	scaled := decimal.NewFromInt(int64(p.BaseBreakLength)).Mul(stressSum).Mul(p.balanceAdjustment()).Div(nine)
	return int(scaled.Floor().IntPart())
}

func (p PreferenceProfile) balanceAdjustment() decimal.Decimal {
	switch {
	case p.BalanceRatio.LessThan(lowBalanceRatio) && p.DaysUntilRefresh > 180:
		return lowBalanceDampener
	case p.DaysUntilRefresh < 60 && p.BalanceRatio.GreaterThan(minBoostRatio):
		return nearRefreshBoost
	default:
		return decimal.NewFromInt(1)
	}
}

// =============================================================================
// NORMALIZER
// =============================================================================

// Normalizer builds profiles using a fixed set of tables.
type Normalizer struct {
	Tables             *Tables
	StandardAllocation int
	// DefaultRegion applies when the payload carries no country_region.
	DefaultRegion string
}

// NewNormalizer fills zero arguments with the package defaults. An empty
// defaultRegion means England & Wales.
func NewNormalizer(tables *Tables, standardAllocation int, defaultRegion string) *Normalizer {
	if tables == nil {
		tables = DefaultTables()
	}
	if standardAllocation <= 0 {
		standardAllocation = DefaultStandardAllocation
	}
	if defaultRegion == "" {
		defaultRegion = calendar.RegionEnglandWales
	}
	return &Normalizer{Tables: tables, StandardAllocation: standardAllocation, DefaultRegion: defaultRegion}
}

// Normalize maps a raw payload to a profile relative to today.
func (n *Normalizer) Normalize(payload Payload, today generic.TimePoint) (PreferenceProfile, error) {
	p := PreferenceProfile{
		WorkType:           payload.String(KeyWorkType, DefaultWorkType),
		WorkHours:          payload.Int(KeyWorkHours, DefaultWorkHours),
		BreakFrequency:     payload.String(KeyBreakFrequency, DefaultBreakFrequency),
		PreferredBreakType: payload.String(KeyPreferredBreakType, ""),
		PreHolidayStress:   payload.Score(KeyPreHolidayStress, n.Tables.HolidayStress),
		PostHolidayStress:  payload.Score(KeyPostHolidayStress, n.Tables.HolidayStress),
		BreakAnxiety:       payload.Score(KeyBreakAnxiety, n.Tables.BreakAnxiety),
		BreakNecessity:     payload.Score(KeyBreakNecessity, n.Tables.BreakNecessity),
		HolidayPreference:  payload.String(KeyHolidayPreference, ""),
		SeasonalPreference: payload.String(KeySeasonalPreference, ""),
		CountryRegion:      payload.String(KeyCountryRegion, n.DefaultRegion),
		LeaveBalance:       payload.Int(KeyLeaveBalance, DefaultLeaveBalance),
	}
	if p.LeaveBalance < 0 {
		return PreferenceProfile{}, fmt.Errorf("%s %d: %w", KeyLeaveBalance, p.LeaveBalance, generic.ErrNegativeBalance)
	}

	stressSum := decimal.NewFromInt(int64(p.PreHolidayStress + p.PostHolidayStress + p.BreakAnxiety))
	p.OverallStress = stressSum.Div(three)
	p.BaseBreakLength = n.Tables.baseBreakLength(p.PreferredBreakType)

	refresh, ok, err := payload.Date(KeyRefreshDate)
	if err != nil {
		return PreferenceProfile{}, err
	}
	if !ok {
		refresh = defaultRefreshDate(today)
	}
	p.AnnualLeaveRefreshDate = nextRefresh(refresh, today)
	p.DaysUntilRefresh = generic.DaysBetween(today, p.AnnualLeaveRefreshDate)

	if p.SpecialDates, err = payload.Dates(KeySpecialDates); err != nil {
		return PreferenceProfile{}, err
	}
	if p.BlackoutDates, err = payload.Dates(KeyBlackoutDates); err != nil {
		return PreferenceProfile{}, err
	}

	p.BalanceRatio = decimal.NewFromInt(int64(p.LeaveBalance)).
		Div(decimal.NewFromInt(int64(n.StandardAllocation)))
	if p.BalanceRatio.GreaterThan(maxBalanceRatio) {
		p.BalanceRatio = maxBalanceRatio
	}
	return p, nil
}

func defaultRefreshDate(today generic.TimePoint) generic.TimePoint {
	if today.Month() >= time.October {
		return generic.StartOfYear(today.Year() + 1)
	}
	return generic.StartOfYear(today.Year())
}

// nextRefresh rolls a refresh date that has already passed to its next
// month/day occurrence strictly after today.
func nextRefresh(refresh, today generic.TimePoint) generic.TimePoint {
	if !refresh.Before(today) {
		return refresh
	}
	next := generic.NewTimePoint(today.Year(), refresh.Month(), refresh.Day())
	if !next.After(today) {
		next = next.AddYears(1)
	}
	return next
}
