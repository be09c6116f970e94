package ynab

import (
	"context"
)

// BudgetService handles budget-level operations
type BudgetService interface {
	// List retrieves all budgets
	List(ctx context.Context) ([]*BudgetSummary, error)

	// GetSettings retrieves settings for a budget
	GetSettings(ctx context.Context, budgetID string) (*BudgetSettings, error)
}

// CategoryService handles category operations
type CategoryService interface {
	// List retrieves all category groups with their categories
	List(ctx context.Context, budgetID string) ([]*CategoryGroupWithCategories, error)

	// Get retrieves a single category
	Get(ctx context.Context, budgetID, categoryID string) (*Category, error)

	// GetForMonth retrieves a single category as of a specific month
	GetForMonth(ctx context.Context, budgetID, month, categoryID string) (*Category, error)
}

// MonthService handles budget month operations
type MonthService interface {
	// List retrieves summaries for all budget months
	List(ctx context.Context, budgetID string) ([]*MonthSummary, error)

	// Get retrieves a single budget month with its categories
	Get(ctx context.Context, budgetID, month string) (*Month, error)
}
