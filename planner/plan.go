package planner

import (
	"github.com/shopspring/decimal"

	"github.com/warp/leave-planner/generic"
)

// Strategy keys in the result map.
const (
	StrategyHolidayExtension    = "holiday_extension"
	StrategySpecialDateAnchored = "special_date_anchored"
	StrategySeasonalBalanced    = "seasonal_balanced"
)

// RecommendedPlan is one candidate set of leave dates and what it achieves.
// Plans are built fresh per call and never mutated after return.
type RecommendedPlan struct {
	Strategy               string              `json:"strategy"`
	LeaveDates             []generic.TimePoint `json:"leave_dates"`
	TotalRestDays          int                 `json:"total_rest_days"`
	LongestRun             int                 `json:"longest_run"`
	LeaveDaysUsed          int                 `json:"leave_days_used"`
	RemainingBalance       int                 `json:"remaining_balance"`
	AnnualLeaveRefreshDate generic.TimePoint   `json:"annual_leave_refresh_date"`
	DaysUntilRefresh       int                 `json:"days_until_refresh"`
	BalanceRatio           float64             `json:"balance_ratio"`
	Description            string              `json:"description"`
}

// Feasible reports whether the plan proposes any leave.
func (p RecommendedPlan) Feasible() bool { return len(p.LeaveDates) > 0 }

// EmptyPlan is the canonical "no feasible plan" result for a profile.
func EmptyPlan(profile PreferenceProfile) RecommendedPlan {
	return RecommendedPlan{
		LeaveDates:             []generic.TimePoint{},
		RemainingBalance:       profile.LeaveBalance,
		AnnualLeaveRefreshDate: profile.AnnualLeaveRefreshDate,
		DaysUntilRefresh:       profile.DaysUntilRefresh,
		BalanceRatio:           ratioFloat(profile.BalanceRatio),
	}
}

func ratioFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
