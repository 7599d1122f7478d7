package planner

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/warp/leave-planner/generic"
)

// Payload is the loosely-typed preference mapping supplied by callers.
// Values are typically what encoding/json produces for map[string]any,
// but native Go values (int, time.Time, generic.TimePoint) are accepted too.
type Payload map[string]any

// Payload keys.
const (
	KeyWorkType           = "work_type"
	KeyWorkHours          = "work_hours"
	KeyBreakFrequency     = "break_frequency"
	KeyPreferredBreakType = "preferred_break_type"
	KeyPreHolidayStress   = "pre_holiday_stress"
	KeyPostHolidayStress  = "post_holiday_stress"
	KeyBreakAnxiety       = "break_anxiety"
	KeyBreakNecessity     = "break_necessity"
	KeyHolidayPreference  = "holiday_preference"
	KeySeasonalPreference = "seasonal_preference"
	KeyCountryRegion      = "country_region"
	KeyLeaveBalance       = "leave_balance"
	KeyRefreshDate        = "annual_leave_refresh_date"
	KeySpecialDates       = "special_dates"
	KeyBlackoutDates      = "blackout_dates"
)

// String returns a trimmed, non-empty string value or def.
func (p Payload) String(key, def string) string {
	if s, ok := p[key].(string); ok {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return def
}

// Int coerces numeric and numeric-string values, returning def otherwise.
func (p Payload) Int(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return truncate(v, def)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return truncate(f, def)
		}
	case string:
		v = strings.TrimSpace(v)
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return truncate(f, def)
		}
	}
	return def
}

// truncate drops the fraction of f; NaN and infinities yield def.
func truncate(f float64, def int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return int(f)
}

// Score resolves a stress-like field: a label from table, or a number
// clamped to 1..5. Anything else yields MidScore.
func (p Payload) Score(key string, table map[string]int) int {
	switch p[key].(type) {
	case string:
		if n := p.Int(key, 0); n != 0 {
			return clampScore(n)
		}
		return lookupScore(table, p[key].(string))
	case int, int64, float64, json.Number:
		return clampScore(p.Int(key, MidScore))
	}
	return MidScore
}

func clampScore(n int) int {
	return max(1, min(5, n))
}

// Date returns the day stored under key. ok is false when the key is
// absent or blank. Unparseable strings fail with *generic.ParseError.
func (p Payload) Date(key string) (d generic.TimePoint, ok bool, err error) {
	switch v := p[key].(type) {
	case nil:
		return d, false, nil
	case generic.TimePoint:
		return v, !v.IsZero(), nil
	case time.Time:
		return generic.FromTime(v), !v.IsZero(), nil
	case string:
		if strings.TrimSpace(v) == "" {
			return d, false, nil
		}
		d, err = parseField(key, v)
		return d, err == nil, err
	default:
		return d, false, nil
	}
}

// Dates returns every day stored under key. A single string may hold a
// comma-separated list.
func (p Payload) Dates(key string) ([]generic.TimePoint, error) {
	var raw []any
	switch v := p[key].(type) {
	case nil:
		return nil, nil
	case []any:
		raw = v
	case []string:
		for _, s := range v {
			raw = append(raw, s)
		}
	case []time.Time:
		for _, t := range v {
			raw = append(raw, t)
		}
	case []generic.TimePoint:
		return generic.UniqueSorted(v), nil
	case string:
		for _, s := range strings.Split(v, ",") {
			raw = append(raw, s)
		}
	default:
		return nil, nil
	}

	var out []generic.TimePoint
	for _, item := range raw {
		switch v := item.(type) {
		case generic.TimePoint:
			out = append(out, v)
		case time.Time:
			out = append(out, generic.FromTime(v))
		case string:
			if strings.TrimSpace(v) == "" {
				continue
			}
			d, err := parseField(key, v)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
	}
	return generic.UniqueSorted(out), nil
}

func parseField(key, value string) (generic.TimePoint, error) {
	d, err := generic.ParseDate(value)
	if pe, ok := err.(*generic.ParseError); ok {
		pe.Field = key
		return d, pe
	}
	return d, err
}
