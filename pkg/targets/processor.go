package targets

import (
	"math"

	"github.com/eshaffer321/ynab-targets-go/pkg/ynab"
)

// ProcessCategory combines a category with its resolved monthly
// requirement into variance, percentage-of-target, and an alignment
// classification. Hidden and deleted categories are still processed;
// aggregation and ranking filter them per the configuration.
func (a *Analyzer) ProcessCategory(c *ynab.Category, neededThisMonth *int64) *ProcessedCategory {
	p := &ProcessedCategory{
		Category:        c,
		NeededThisMonth: neededThisMonth,
	}

	if neededThisMonth != nil {
		p.Variance = c.Budgeted - *neededThisMonth
	}

	tolerance := a.config.ToleranceMilliunits
	switch {
	case (neededThisMonth == nil || *neededThisMonth == 0) && c.Budgeted > 0:
		p.AlignmentStatus = NoTarget
	case p.Variance > tolerance:
		p.AlignmentStatus = OverTarget
	case p.Variance < -tolerance:
		p.AlignmentStatus = UnderTarget
	default:
		p.AlignmentStatus = OnTarget
	}

	p.PercentageOfTarget = safePercentage(c.Budgeted, neededThisMonth)

	return p
}

// safePercentage computes numerator over denominator as a percentage,
// returning nil rather than NaN or Infinity when the denominator is nil
// or zero
func safePercentage(numerator int64, denominator *int64) *float64 {
	if denominator == nil || *denominator == 0 {
		return nil
	}

	pct := float64(numerator) / float64(*denominator) * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return nil
	}

	return &pct
}
