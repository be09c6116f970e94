package ynab

// GoalType represents the kind of target set on a category
type GoalType string

const (
	// GoalTargetBalance is a "Target Category Balance" goal
	GoalTargetBalance GoalType = "TB"

	// GoalTargetBalanceByDate is a "Target Category Balance by Date" goal
	GoalTargetBalanceByDate GoalType = "TBD"

	// GoalMonthlyFunding is a "Monthly Funding" goal
	GoalMonthlyFunding GoalType = "MF"

	// GoalPlanSpending is a "Plan Your Spending" goal
	GoalPlanSpending GoalType = "NEED"

	// GoalDebt is a debt payoff goal
	GoalDebt GoalType = "DEBT"
)

// Goal cadence values as returned by the API
const (
	// CadenceOneTime is a one-time goal
	CadenceOneTime = 0

	// CadenceMonthly repeats every goal_cadence_frequency months
	CadenceMonthly = 1

	// CadenceWeekly repeats every goal_cadence_frequency weeks
	CadenceWeekly = 2

	// CadenceYearly repeats every goal_cadence_frequency years
	CadenceYearly = 13
)

// BudgetSummary represents a budget as returned by the budgets list
type BudgetSummary struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn Date            `json:"last_modified_on"`
	FirstMonth     string          `json:"first_month"`
	LastMonth      string          `json:"last_month"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
}

// BudgetSettings represents budget settings
type BudgetSettings struct {
	DateFormat     *DateFormat     `json:"date_format"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
}

// DateFormat represents the budget's date display format
type DateFormat struct {
	Format string `json:"format"`
}

// CurrencyFormat represents the budget's currency display format
type CurrencyFormat struct {
	ISOCode          string `json:"iso_code"`
	ExampleFormat    string `json:"example_format"`
	DecimalDigits    int    `json:"decimal_digits"`
	DecimalSeparator string `json:"decimal_separator"`
	SymbolFirst      bool   `json:"symbol_first"`
	GroupSeparator   string `json:"group_separator"`
	CurrencySymbol   string `json:"currency_symbol"`
	DisplaySymbol    bool   `json:"display_symbol"`
}

// CategoryGroup represents a category group
type CategoryGroup struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Hidden  bool   `json:"hidden"`
	Deleted bool   `json:"deleted"`
}

// CategoryGroupWithCategories is a category group with its categories
type CategoryGroupWithCategories struct {
	CategoryGroup
	Categories []*Category `json:"categories"`
}

// Category represents a budget category for a single month.
//
// All amounts are integer milliunits (1000 milliunits = 1.00 in the
// budget's currency). Goal fields are pointers because the API returns
// null for categories without a goal, and month fields are YYYY-MM-DD
// strings denoting the first day of a month.
type Category struct {
	ID                      string    `json:"id"`
	CategoryGroupID         string    `json:"category_group_id"`
	CategoryGroupName       string    `json:"category_group_name"`
	Name                    string    `json:"name"`
	Hidden                  bool      `json:"hidden"`
	OriginalCategoryGroupID *string   `json:"original_category_group_id,omitempty"`
	Note                    *string   `json:"note,omitempty"`
	Budgeted                int64     `json:"budgeted"`
	Activity                int64     `json:"activity"`
	Balance                 int64     `json:"balance"`
	GoalType                *GoalType `json:"goal_type,omitempty"`
	GoalNeedsWholeAmount    *bool     `json:"goal_needs_whole_amount,omitempty"`
	GoalDay                 *int      `json:"goal_day,omitempty"`
	GoalCadence             *int      `json:"goal_cadence,omitempty"`
	GoalCadenceFrequency    *int      `json:"goal_cadence_frequency,omitempty"`
	GoalCreationMonth       *string   `json:"goal_creation_month,omitempty"`
	GoalTarget              *int64    `json:"goal_target,omitempty"`
	GoalTargetMonth         *string   `json:"goal_target_month,omitempty"`
	GoalPercentageComplete  *int      `json:"goal_percentage_complete,omitempty"`
	GoalMonthsToBudget      *int      `json:"goal_months_to_budget,omitempty"`
	GoalUnderFunded         *int64    `json:"goal_under_funded,omitempty"`
	GoalOverallFunded       *int64    `json:"goal_overall_funded,omitempty"`
	GoalOverallLeft         *int64    `json:"goal_overall_left,omitempty"`
	Deleted                 bool      `json:"deleted"`
}

// HasGoal reports whether the category has a goal set
func (c *Category) HasGoal() bool {
	return c.GoalType != nil
}

// FlattenCategoryGroups collapses category groups into a flat category
// list, preserving group order then category order
func FlattenCategoryGroups(groups []*CategoryGroupWithCategories) []*Category {
	var categories []*Category
	for _, g := range groups {
		if g == nil {
			continue
		}
		categories = append(categories, g.Categories...)
	}
	return categories
}

// MonthSummary represents a budget month without category detail
type MonthSummary struct {
	Month        string  `json:"month"`
	Note         *string `json:"note,omitempty"`
	Income       int64   `json:"income"`
	Budgeted     int64   `json:"budgeted"`
	Activity     int64   `json:"activity"`
	ToBeBudgeted int64   `json:"to_be_budgeted"`
	AgeOfMoney   *int    `json:"age_of_money,omitempty"`
	Deleted      bool    `json:"deleted"`
}

// Month represents a single budget month with its categories
type Month struct {
	MonthSummary
	Categories []*Category `json:"categories"`
}
