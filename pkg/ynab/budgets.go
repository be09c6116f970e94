package ynab

import (
	"context"

	"github.com/pkg/errors"
)

// budgetService implements the BudgetService interface
type budgetService struct {
	client *Client
}

// List retrieves all budgets
func (s *budgetService) List(ctx context.Context) ([]*BudgetSummary, error) {
	var result struct {
		Budgets []*BudgetSummary `json:"budgets"`
	}

	if err := s.client.get(ctx, "/budgets", &result); err != nil {
		return nil, errors.Wrap(err, "failed to list budgets")
	}

	return result.Budgets, nil
}

// GetSettings retrieves settings for a budget
func (s *budgetService) GetSettings(ctx context.Context, budgetID string) (*BudgetSettings, error) {
	var result struct {
		Settings *BudgetSettings `json:"settings"`
	}

	if err := s.client.get(ctx, "/budgets/"+budgetID+"/settings", &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budget settings")
	}

	return result.Settings, nil
}
