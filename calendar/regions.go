package calendar

import (
	"strings"
	"time"

	"github.com/warp/leave-planner/generic"
)

// Region codes with a dedicated holiday table.
const (
	RegionEnglandWales = "england-and-wales"
	RegionScotland     = "scotland"
	RegionDefault      = "default"
)

var (
	earlyMay = movedRule{
		Rule:  weekdayRule{name: "Early May bank holiday", month: time.May, weekday: time.Monday, n: 1},
		moves: map[int]generic.TimePoint{2020: generic.NewTimePoint(2020, time.May, 8)},
	}
	springBank = movedRule{
		Rule:  weekdayRule{name: "Spring bank holiday", month: time.May, weekday: time.Monday, n: -1},
		moves: map[int]generic.TimePoint{2022: generic.NewTimePoint(2022, time.June, 2)},
	}
	christmas = pairRule{first: "Christmas Day", second: "Boxing Day", month: time.December, day: 25}
	goodFri   = easterRule{name: "Good Friday", offset: -2}

	royalOneOffs = []Rule{
		oneOffRule{name: "Platinum Jubilee bank holiday", date: generic.NewTimePoint(2022, time.June, 3)},
		oneOffRule{name: "Bank Holiday for the State Funeral of Queen Elizabeth II", date: generic.NewTimePoint(2022, time.September, 19)},
		oneOffRule{name: "Bank holiday for the coronation of King Charles III", date: generic.NewTimePoint(2023, time.May, 8)},
	}
)

// regionRules is built once at package init and never mutated.
var regionRules = map[string][]Rule{
	RegionEnglandWales: append([]Rule{
		fixedRule{name: "New Year's Day", month: time.January, day: 1},
		goodFri,
		easterRule{name: "Easter Monday", offset: 1},
		earlyMay,
		springBank,
		weekdayRule{name: "Summer bank holiday", month: time.August, weekday: time.Monday, n: -1},
		christmas,
	}, royalOneOffs...),

	RegionScotland: append([]Rule{
		pairRule{first: "New Year's Day", second: "2nd January", month: time.January, day: 1},
		goodFri,
		earlyMay,
		springBank,
		weekdayRule{name: "Summer bank holiday", month: time.August, weekday: time.Monday, n: 1},
		fixedRule{name: "St Andrew's Day", month: time.November, day: 30},
		christmas,
	}, royalOneOffs...),

	// Holidays observed in every UK nation.
	RegionDefault: append([]Rule{
		fixedRule{name: "New Year's Day", month: time.January, day: 1},
		goodFri,
		earlyMay,
		springBank,
		christmas,
	}, royalOneOffs...),
}

var regionAliases = map[string]string{
	"england":           RegionEnglandWales,
	"wales":             RegionEnglandWales,
	"england-wales":     RegionEnglandWales,
	"england-and-wales": RegionEnglandWales,
	"gb-eng":            RegionEnglandWales,
	"gb-wls":            RegionEnglandWales,
	"eng":               RegionEnglandWales,
	"scotland":          RegionScotland,
	"gb-sct":            RegionScotland,
	"sct":               RegionScotland,
	"uk":                RegionDefault,
	"gb":                RegionDefault,
	"default":           RegionDefault,
}

// ResolveRegion maps a free-form region code to a supported region.
// Unknown or empty codes resolve to RegionDefault.
func ResolveRegion(code string) string {
	key := strings.ToLower(strings.TrimSpace(code))
	key = strings.NewReplacer("_", "-", " ", "-", "&", "and").Replace(key)
	if r, ok := regionAliases[key]; ok {
		return r
	}
	return RegionDefault
}

// Regions lists the supported region codes.
func Regions() []string {
	return []string{RegionEnglandWales, RegionScotland, RegionDefault}
}
