package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/eshaffer321/ynab-targets-go/pkg/targets"
	"github.com/eshaffer321/ynab-targets-go/pkg/ynab"
)

// formatMilliunits renders a milliunit amount (1000 = 1.00) using the
// budget's currency format; a nil format falls back to a bare number
func formatMilliunits(v int64, currency *ynab.CurrencyFormat) string {
	digits := 2
	if currency != nil {
		digits = currency.DecimalDigits
	}

	number := strconv.FormatFloat(float64(v)/1000, 'f', digits, 64)
	if currency == nil || !currency.DisplaySymbol {
		return number
	}

	if currency.SymbolFirst {
		return currency.CurrencySymbol + number
	}
	return number + currency.CurrencySymbol
}

func printReport(w io.Writer, report *targets.MonthReport, currency *ynab.CurrencyFormat) {
	money := func(v int64) string { return formatMilliunits(v, currency) }
	analysis := report.Analysis

	fmt.Fprintf(w, "Target funding report for %s\n\n", report.Month)

	fmt.Fprintf(w, "Assigned:      %s across %d categories\n", money(analysis.TotalAssigned), analysis.CategoriesAnalyzed)
	fmt.Fprintf(w, "Targeted:      %s across %d categories\n", money(analysis.TotalTargeted), analysis.CategoriesWithTarget)
	fmt.Fprintf(w, "On target:     %s (%.1f%%)\n", money(analysis.OnTargetAmount), analysis.OnTargetPercentage)
	fmt.Fprintf(w, "Over target:   %s (%.1f%%)\n", money(analysis.OverTargetAmount), analysis.OverTargetPercentage)
	fmt.Fprintf(w, "Under target:  %s (%.1f%%)\n", money(analysis.UnderTargetAmount), analysis.UnderTargetPercentage)
	fmt.Fprintf(w, "No target:     %s (%.1f%%)\n", money(analysis.NoTargetAmount), analysis.NoTargetPercentage)
	fmt.Fprintf(w, "\nDiscipline:    %.0f/100 (%s)\n", analysis.DisciplineScore, analysis.DisciplineRating)

	variances := report.Variances

	if len(variances.OverTarget) > 0 {
		fmt.Fprintf(w, "\nOver target:\n")
		for _, v := range variances.OverTarget {
			fmt.Fprintf(w, "  %-30s +%s\n", v.Name, money(v.Variance))
		}
	}

	if len(variances.UnderTarget) > 0 {
		fmt.Fprintf(w, "\nUnder target:\n")
		for _, v := range variances.UnderTarget {
			fmt.Fprintf(w, "  %-30s %s\n", v.Name, money(v.Variance))
		}
	}

	if len(variances.NoTarget) > 0 {
		fmt.Fprintf(w, "\nAssigned without a target:\n")
		for _, v := range variances.NoTarget {
			fmt.Fprintf(w, "  %-30s %s\n", v.Name, money(v.Assigned))
		}
	}

	if len(variances.TargetSummary) > 0 {
		fmt.Fprintf(w, "\nTarget summary:\n")
		for _, entry := range variances.TargetSummary {
			fmt.Fprintf(w, "  %-30s %s (%.1f%% of targeted)\n",
				entry.Name, money(entry.NeededThisMonth), entry.PercentageOfTotalTargeted)
		}
	}
}
