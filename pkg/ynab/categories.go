package ynab

import (
	"context"

	"github.com/pkg/errors"
)

// categoryService implements the CategoryService interface
type categoryService struct {
	client *Client
}

// List retrieves all category groups with their categories
func (s *categoryService) List(ctx context.Context, budgetID string) ([]*CategoryGroupWithCategories, error) {
	var result struct {
		CategoryGroups []*CategoryGroupWithCategories `json:"category_groups"`
	}

	if err := s.client.get(ctx, "/budgets/"+budgetID+"/categories", &result); err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return result.CategoryGroups, nil
}

// Get retrieves a single category
func (s *categoryService) Get(ctx context.Context, budgetID, categoryID string) (*Category, error) {
	var result struct {
		Category *Category `json:"category"`
	}

	if err := s.client.get(ctx, "/budgets/"+budgetID+"/categories/"+categoryID, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}

	return result.Category, nil
}

// GetForMonth retrieves a single category as of a specific month
func (s *categoryService) GetForMonth(ctx context.Context, budgetID, month, categoryID string) (*Category, error) {
	var result struct {
		Category *Category `json:"category"`
	}

	path := "/budgets/" + budgetID + "/months/" + month + "/categories/" + categoryID
	if err := s.client.get(ctx, path, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get category for month")
	}

	return result.Category, nil
}
