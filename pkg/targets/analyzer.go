// Package targets computes monthly target-funding analysis over budget
// categories: it resolves each category's funding requirement from its
// goal fields, classifies assignments against that requirement, and
// aggregates the results into a monthly variance report.
//
// Every entry point is a pure function of its inputs. The package holds
// no state between calls, performs no I/O, and never returns an error:
// malformed records degrade to documented defaults.
package targets

import (
	"github.com/eshaffer321/ynab-targets-go/pkg/ynab"
)

// Analyzer runs the full analysis pipeline with a fixed configuration
type Analyzer struct {
	config *Config
}

// New creates an Analyzer. A nil config means DefaultConfig
func New(config *Config) *Analyzer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Analyzer{config: config}
}

// AnalyzeMonth resolves, processes, aggregates, and ranks the given
// categories for one analysis month (YYYY-MM-DD or YYYY-MM)
func (a *Analyzer) AnalyzeMonth(categories []*ynab.Category, month string) *MonthReport {
	processed := make([]*ProcessedCategory, 0, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		needed := ResolveGoalAmount(c, month)
		processed = append(processed, a.ProcessCategory(c, needed))
	}

	return &MonthReport{
		Month:      month,
		Categories: processed,
		Analysis:   a.Aggregate(processed),
		Variances:  a.Rank(processed),
	}
}

// filter drops hidden, deleted, and below-threshold categories per the
// configuration
func (a *Analyzer) filter(processed []*ProcessedCategory) []*ProcessedCategory {
	kept := make([]*ProcessedCategory, 0, len(processed))
	for _, p := range processed {
		c := p.Category
		if c.Hidden && !a.config.IncludeHiddenCategories {
			continue
		}
		if c.Deleted && !a.config.IncludeDeletedCategories {
			continue
		}
		if c.Budgeted < a.config.MinimumAssignmentThreshold {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
