package targets

import (
	"math"
	"time"

	"github.com/eshaffer321/ynab-targets-go/pkg/ynab"
)

// goalRule is one entry in the ordered decision procedure: matches
// reports whether the rule owns the category, amount computes its
// monthly requirement. The first matching rule wins.
type goalRule struct {
	name    string
	matches func(c *ynab.Category, analysis monthRef) bool
	amount  func(c *ynab.Category, analysis monthRef) *int64
}

// goalRules is evaluated strictly in order. The cadence rules sit above
// the funding-horizon rule so a goal carrying both cadence fields and
// goal_months_to_budget prices by its cadence, and future-goal
// suppression sits above both because cadence fields may already be
// populated on a goal that has not started.
var goalRules = []goalRule{
	{
		name: "no-goal",
		matches: func(c *ynab.Category, _ monthRef) bool {
			return c.GoalType == nil
		},
		amount: func(_ *ynab.Category, _ monthRef) *int64 {
			// Categories without goals contribute zero to "needed",
			// not nil, so they still participate in totals.
			return milliunits(0)
		},
	},
	{
		name: "future-goal",
		matches: func(c *ynab.Category, analysis monthRef) bool {
			if c.GoalCreationMonth == nil || !analysis.valid {
				return false
			}
			created := parseMonth(*c.GoalCreationMonth)
			return created.valid && created.after(analysis)
		},
		amount: func(_ *ynab.Category, _ monthRef) *int64 {
			// A goal that does not yet exist cannot require funding.
			return milliunits(0)
		},
	},
	{
		name: "monthly-cadence",
		matches: func(c *ynab.Category, _ monthRef) bool {
			return cadenceIs(c, ynab.CadenceMonthly)
		},
		amount: func(c *ynab.Category, _ monthRef) *int64 {
			// goal_target already denotes the monthly amount.
			return milliunits(int64Value(c.GoalTarget))
		},
	},
	{
		name: "weekly-cadence",
		matches: func(c *ynab.Category, _ monthRef) bool {
			return cadenceIs(c, ynab.CadenceWeekly)
		},
		amount: func(c *ynab.Category, analysis monthRef) *int64 {
			day, ok := weekdayOf(c)
			if !ok || !analysis.valid {
				// Invalid goal_day or analysis month: skip the weekly
				// rule and price like the fallback rule.
				return fallbackAmount(c)
			}
			occurrences := countWeekdayOccurrences(analysis.year, analysis.month, day)
			return milliunits(int64Value(c.GoalTarget) * int64(occurrences))
		},
	},
	{
		name: "funding-horizon",
		matches: func(c *ynab.Category, _ monthRef) bool {
			return c.GoalMonthsToBudget != nil && *c.GoalMonthsToBudget > 0
		},
		amount: func(c *ynab.Category, _ monthRef) *int64 {
			months := *c.GoalMonthsToBudget
			remaining := int64Value(c.GoalOverallLeft) + c.Budgeted
			needed := math.Round(float64(remaining) / float64(months))
			return milliunits(int64(needed))
		},
	},
	{
		name: "exhausted-horizon",
		matches: func(c *ynab.Category, _ monthRef) bool {
			return c.GoalMonthsToBudget != nil && *c.GoalMonthsToBudget <= 0
		},
		amount: func(_ *ynab.Category, _ monthRef) *int64 {
			// The goal window has closed or lapsed.
			return milliunits(0)
		},
	},
	{
		name: "fallback",
		matches: func(_ *ynab.Category, _ monthRef) bool {
			return true
		},
		amount: func(c *ynab.Category, _ monthRef) *int64 {
			return fallbackAmount(c)
		},
	},
}

// ResolveGoalAmount returns the category's monthly funding requirement
// in milliunits for the given analysis month, or nil when no goal
// applies. It is deterministic, never returns a negative amount, and
// never panics: malformed input degrades to the fallback rule.
func ResolveGoalAmount(c *ynab.Category, analysisMonth string) *int64 {
	if c == nil {
		return milliunits(0)
	}

	analysis := parseMonth(analysisMonth)

	for _, rule := range goalRules {
		if rule.matches(c, analysis) {
			return clampNonNegative(rule.amount(c, analysis))
		}
	}

	// Unreachable: the fallback rule matches everything.
	return nil
}

// fallbackAmount prices Monthly Funding goals, balance and debt goals
// without a funding horizon, and spending goals with a non-matching
// cadence: goal_target unchanged, or nil when absent.
func fallbackAmount(c *ynab.Category) *int64 {
	if c.GoalTarget == nil {
		return nil
	}
	return milliunits(*c.GoalTarget)
}

// cadenceIs reports whether the category repeats at the given cadence
// with a frequency of one
func cadenceIs(c *ynab.Category, cadence int) bool {
	return c.GoalCadence != nil && *c.GoalCadence == cadence &&
		c.GoalCadenceFrequency != nil && *c.GoalCadenceFrequency == 1
}

// weekdayOf returns the goal's weekday anchor, ok=false when goal_day is
// absent or outside 0-6 (0 = Sunday, matching time.Weekday)
func weekdayOf(c *ynab.Category) (time.Weekday, bool) {
	if c.GoalDay == nil || *c.GoalDay < 0 || *c.GoalDay > 6 {
		return 0, false
	}
	return time.Weekday(*c.GoalDay), true
}

// milliunits returns a pointer to v
func milliunits(v int64) *int64 {
	return &v
}

// int64Value returns the pointed-to value or zero
func int64Value(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// clampNonNegative forces a resolved amount to be at least zero; a
// requirement is never negative
func clampNonNegative(p *int64) *int64 {
	if p == nil {
		return nil
	}
	if *p < 0 {
		return milliunits(0)
	}
	return p
}
