package ynab

import (
	"context"

	"github.com/pkg/errors"
)

// monthService implements the MonthService interface
type monthService struct {
	client *Client
}

// List retrieves summaries for all budget months
func (s *monthService) List(ctx context.Context, budgetID string) ([]*MonthSummary, error) {
	var result struct {
		Months []*MonthSummary `json:"months"`
	}

	if err := s.client.get(ctx, "/budgets/"+budgetID+"/months", &result); err != nil {
		return nil, errors.Wrap(err, "failed to list months")
	}

	return result.Months, nil
}

// Get retrieves a single budget month with its categories
func (s *monthService) Get(ctx context.Context, budgetID, month string) (*Month, error) {
	var result struct {
		Month *Month `json:"month"`
	}

	if err := s.client.get(ctx, "/budgets/"+budgetID+"/months/"+month, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get month")
	}

	return result.Month, nil
}
