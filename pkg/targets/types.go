package targets

import (
	"github.com/eshaffer321/ynab-targets-go/pkg/ynab"
)

// AlignmentStatus classifies a category's funding relative to its
// computed monthly requirement
type AlignmentStatus string

const (
	// OnTarget means the assigned amount is within tolerance of the requirement
	OnTarget AlignmentStatus = "ON_TARGET"

	// OverTarget means more was assigned than required
	OverTarget AlignmentStatus = "OVER_TARGET"

	// UnderTarget means less was assigned than required
	UnderTarget AlignmentStatus = "UNDER_TARGET"

	// NoTarget means money was assigned to a category with no requirement
	NoTarget AlignmentStatus = "NO_TARGET"
)

// DisciplineRating labels a discipline score
type DisciplineRating string

const (
	RatingExcellent        DisciplineRating = "Excellent"
	RatingGood             DisciplineRating = "Good"
	RatingFair             DisciplineRating = "Fair"
	RatingNeedsImprovement DisciplineRating = "Needs Improvement"
)

// ProcessedCategory is a category combined with its resolved monthly
// requirement and alignment classification
type ProcessedCategory struct {
	Category *ynab.Category `json:"category"`

	// NeededThisMonth is the resolved monthly funding requirement in
	// milliunits, nil when no goal applies this month
	NeededThisMonth *int64 `json:"needed_this_month"`

	// Variance is assigned minus needed, 0 when NeededThisMonth is nil
	Variance int64 `json:"variance"`

	// PercentageOfTarget is assigned over needed as a percentage, nil
	// when the requirement is nil or zero
	PercentageOfTarget *float64 `json:"percentage_of_target"`

	AlignmentStatus AlignmentStatus `json:"alignment_status"`
}

// MonthlyAnalysis aggregates processed categories for one budget month
type MonthlyAnalysis struct {
	TotalAssigned int64 `json:"total_assigned"`
	TotalTargeted int64 `json:"total_targeted"`

	OnTargetAmount    int64 `json:"on_target_amount"`
	OverTargetAmount  int64 `json:"over_target_amount"`
	UnderTargetAmount int64 `json:"under_target_amount"`
	NoTargetAmount    int64 `json:"no_target_amount"`

	OnTargetPercentage    float64 `json:"on_target_percentage"`
	OverTargetPercentage  float64 `json:"over_target_percentage"`
	UnderTargetPercentage float64 `json:"under_target_percentage"`
	NoTargetPercentage    float64 `json:"no_target_percentage"`

	CategoriesAnalyzed      int `json:"categories_analyzed"`
	CategoriesWithTarget    int `json:"categories_with_target"`
	CategoriesOnTarget      int `json:"categories_on_target"`
	CategoriesOverTarget    int `json:"categories_over_target"`
	CategoriesUnderTarget   int `json:"categories_under_target"`
	CategoriesWithoutTarget int `json:"categories_without_target"`

	// DisciplineScore is a 0-100 composite of on-target percentage,
	// over/under penalty, and target coverage
	DisciplineScore float64 `json:"discipline_score"`

	DisciplineRating DisciplineRating `json:"discipline_rating"`
}

// CategoryVariance is a ranking-friendly projection of a processed
// category
type CategoryVariance struct {
	CategoryID        string `json:"category_id"`
	Name              string `json:"name"`
	CategoryGroupName string `json:"category_group_name"`
	Assigned          int64  `json:"assigned"`

	// Target is the resolved monthly requirement, nil when none applies
	Target *int64 `json:"target"`

	Variance int64 `json:"variance"`

	// VariancePercentage is variance over target as a percentage, nil
	// when the target is nil or zero
	VariancePercentage *float64 `json:"variance_percentage"`
}

// TargetSummaryEntry is one row of the target summary list
type TargetSummaryEntry struct {
	CategoryID        string `json:"category_id"`
	Name              string `json:"name"`
	CategoryGroupName string `json:"category_group_name"`
	Assigned          int64  `json:"assigned"`
	NeededThisMonth   int64  `json:"needed_this_month"`

	// PercentageOfTotalTargeted is this category's share of the month's
	// total requirement, 0 when nothing is targeted
	PercentageOfTotalTargeted float64 `json:"percentage_of_total_targeted"`
}

// VarianceReport holds the sorted, filtered views over a month's
// processed categories
type VarianceReport struct {
	OverTarget    []*CategoryVariance   `json:"over_target"`
	UnderTarget   []*CategoryVariance   `json:"under_target"`
	NoTarget      []*CategoryVariance   `json:"no_target"`
	TargetSummary []*TargetSummaryEntry `json:"target_summary"`
}

// MonthReport is the full analysis output for one budget month
type MonthReport struct {
	Month      string               `json:"month"`
	Categories []*ProcessedCategory `json:"categories"`
	Analysis   *MonthlyAnalysis     `json:"analysis"`
	Variances  *VarianceReport      `json:"variances"`
}
