// Command analyzer fetches one budget month from the YNAB API and
// prints a target-funding alignment report for it.
//
// Configuration comes from flags and the environment (a .env file is
// honored if present); YNAB_ACCESS_TOKEN must hold a personal access
// token.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/eshaffer321/ynab-targets-go/pkg/targets"
	"github.com/eshaffer321/ynab-targets-go/pkg/ynab"
)

const tokenEnvVar = "YNAB_ACCESS_TOKEN"

func main() {
	// A missing .env is fine; the token may come from the environment.
	_ = godotenv.Load()

	var (
		budgetID      = flag.String("budget", ynab.LastUsedBudgetID, "budget id, or 'last-used'")
		month         = flag.String("month", ynab.CurrentMonth, "budget month (YYYY-MM-DD), or 'current'")
		tolerance     = flag.Int64("tolerance", 0, "on-target tolerance in milliunits")
		minAssigned   = flag.Int64("min-assigned", 0, "exclude categories with less than this assigned (milliunits)")
		includeHidden = flag.Bool("include-hidden", false, "include hidden categories")
		verbose       = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	logger := newLogger(*verbose)

	token := os.Getenv(tokenEnvVar)
	if token == "" {
		logger.Error("Missing access token", "env", tokenEnvVar)
		os.Exit(1)
	}

	client, err := ynab.NewClient(&ynab.ClientOptions{
		Token:  token,
		Logger: logger,
	})
	if err != nil {
		logger.Error("Failed to create client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// The month detail and the budget's currency settings are
	// independent; fetch them concurrently.
	var (
		monthDetail *ynab.Month
		settings    *ynab.BudgetSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := client.Months.Get(gctx, *budgetID, *month)
		monthDetail = m
		return err
	})
	g.Go(func() error {
		s, err := client.Budgets.GetSettings(gctx, *budgetID)
		settings = s
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to fetch budget month", "budget", *budgetID, "month", *month, "error", err)
		os.Exit(1)
	}

	analyzer := targets.New(&targets.Config{
		ToleranceMilliunits:        *tolerance,
		IncludeHiddenCategories:    *includeHidden,
		MinimumAssignmentThreshold: *minAssigned,
	})

	report := analyzer.AnalyzeMonth(monthDetail.Categories, monthDetail.Month)

	var currency *ynab.CurrencyFormat
	if settings != nil {
		currency = settings.CurrencyFormat
	}

	printReport(os.Stdout, report, currency)
}
