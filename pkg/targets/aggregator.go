package targets

// Discipline score weights. The score rises with on-target percentage
// and target coverage and falls with over/under-target percentage;
// these constants are stable across releases.
const (
	// misalignmentPenaltyWeight scales the over/under-target percentage
	// penalty
	misalignmentPenaltyWeight = 0.25

	// coverageBonusWeight scales the bonus for the fraction of
	// categories that have a target set
	coverageBonusWeight = 15.0
)

// Rating thresholds, stable across releases
const (
	excellentThreshold = 90.0
	goodThreshold      = 75.0
	fairThreshold      = 60.0
)

// Aggregate folds processed categories into monthly totals, partitioned
// sub-totals, counts, and a discipline score. Hidden and deleted
// categories and categories below the minimum assignment threshold are
// excluded per the configuration.
func (a *Analyzer) Aggregate(processed []*ProcessedCategory) *MonthlyAnalysis {
	analysis := &MonthlyAnalysis{}

	for _, p := range a.filter(processed) {
		assigned := p.Category.Budgeted

		analysis.CategoriesAnalyzed++
		analysis.TotalAssigned += assigned

		if hasTarget(p) {
			analysis.TotalTargeted += *p.NeededThisMonth
			analysis.CategoriesWithTarget++
		}

		switch p.AlignmentStatus {
		case OnTarget:
			analysis.OnTargetAmount += assigned
			analysis.CategoriesOnTarget++
		case OverTarget:
			analysis.OverTargetAmount += assigned
			analysis.CategoriesOverTarget++
		case UnderTarget:
			analysis.UnderTargetAmount += assigned
			analysis.CategoriesUnderTarget++
		case NoTarget:
			analysis.NoTargetAmount += assigned
			analysis.CategoriesWithoutTarget++
		}
	}

	analysis.OnTargetPercentage = shareOf(analysis.OnTargetAmount, analysis.TotalAssigned)
	analysis.OverTargetPercentage = shareOf(analysis.OverTargetAmount, analysis.TotalAssigned)
	analysis.UnderTargetPercentage = shareOf(analysis.UnderTargetAmount, analysis.TotalAssigned)
	analysis.NoTargetPercentage = shareOf(analysis.NoTargetAmount, analysis.TotalAssigned)

	analysis.DisciplineScore = disciplineScore(analysis)
	analysis.DisciplineRating = disciplineRating(analysis.DisciplineScore)

	return analysis
}

// disciplineScore computes the 0-100 composite:
//
//	score = onTarget% − 0.25·(overTarget% + underTarget%) + 15·coverage
//
// where coverage is the fraction of analyzed categories with a target,
// clamped to [0, 100]
func disciplineScore(analysis *MonthlyAnalysis) float64 {
	var coverage float64
	if analysis.CategoriesAnalyzed > 0 {
		coverage = float64(analysis.CategoriesWithTarget) / float64(analysis.CategoriesAnalyzed)
	}

	penalty := misalignmentPenaltyWeight * (analysis.OverTargetPercentage + analysis.UnderTargetPercentage)
	score := analysis.OnTargetPercentage - penalty + coverageBonusWeight*coverage

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// disciplineRating is a step function of the score
func disciplineRating(score float64) DisciplineRating {
	switch {
	case score >= excellentThreshold:
		return RatingExcellent
	case score >= goodThreshold:
		return RatingGood
	case score >= fairThreshold:
		return RatingFair
	default:
		return RatingNeedsImprovement
	}
}

// shareOf returns part over total as a percentage, 0 when total is zero
func shareOf(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// hasTarget reports whether the category has a non-nil, non-zero
// monthly requirement
func hasTarget(p *ProcessedCategory) bool {
	return p.NeededThisMonth != nil && *p.NeededThisMonth != 0
}
