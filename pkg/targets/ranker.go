package targets

import "sort"

// Rank derives the sorted variance views over a month's processed
// categories. All sorts are stable so equal keys retain input order,
// and no list is truncated. The same configuration filters apply as in
// Aggregate, so the target summary percentages agree with the monthly
// analysis totals.
func (a *Analyzer) Rank(processed []*ProcessedCategory) *VarianceReport {
	filtered := a.filter(processed)

	report := &VarianceReport{
		OverTarget:    []*CategoryVariance{},
		UnderTarget:   []*CategoryVariance{},
		NoTarget:      []*CategoryVariance{},
		TargetSummary: []*TargetSummaryEntry{},
	}

	var totalTargeted int64
	for _, p := range filtered {
		if hasTarget(p) {
			totalTargeted += *p.NeededThisMonth
		}
	}

	for _, p := range filtered {
		switch p.AlignmentStatus {
		case OverTarget:
			report.OverTarget = append(report.OverTarget, varianceOf(p))
		case UnderTarget:
			report.UnderTarget = append(report.UnderTarget, varianceOf(p))
		case NoTarget:
			report.NoTarget = append(report.NoTarget, varianceOf(p))
		}

		if hasTarget(p) {
			report.TargetSummary = append(report.TargetSummary, &TargetSummaryEntry{
				CategoryID:                p.Category.ID,
				Name:                      p.Category.Name,
				CategoryGroupName:         p.Category.CategoryGroupName,
				Assigned:                  p.Category.Budgeted,
				NeededThisMonth:           *p.NeededThisMonth,
				PercentageOfTotalTargeted: shareOf(*p.NeededThisMonth, totalTargeted),
			})
		}
	}

	// Largest overage first
	sort.SliceStable(report.OverTarget, func(i, j int) bool {
		return report.OverTarget[i].Variance > report.OverTarget[j].Variance
	})

	// Most negative first
	sort.SliceStable(report.UnderTarget, func(i, j int) bool {
		return report.UnderTarget[i].Variance < report.UnderTarget[j].Variance
	})

	// Largest untargeted assignment first
	sort.SliceStable(report.NoTarget, func(i, j int) bool {
		return report.NoTarget[i].Assigned > report.NoTarget[j].Assigned
	})

	// Largest requirement first
	sort.SliceStable(report.TargetSummary, func(i, j int) bool {
		return report.TargetSummary[i].NeededThisMonth > report.TargetSummary[j].NeededThisMonth
	})

	return report
}

// varianceOf projects a processed category into its ranking shape
func varianceOf(p *ProcessedCategory) *CategoryVariance {
	return &CategoryVariance{
		CategoryID:         p.Category.ID,
		Name:               p.Category.Name,
		CategoryGroupName:  p.Category.CategoryGroupName,
		Assigned:           p.Category.Budgeted,
		Target:             p.NeededThisMonth,
		Variance:           p.Variance,
		VariancePercentage: safePercentage(p.Variance, p.NeededThisMonth),
	}
}
