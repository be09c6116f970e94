package ynab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"category_groups": [
			{
				"id": "group-1",
				"name": "Immediate Obligations",
				"hidden": false,
				"deleted": false,
				"categories": [
					{
						"id": "cat-1",
						"category_group_id": "group-1",
						"category_group_name": "Immediate Obligations",
						"name": "Groceries",
						"hidden": false,
						"budgeted": 45000,
						"activity": -32500,
						"balance": 12500,
						"goal_type": "NEED",
						"goal_day": null,
						"goal_cadence": 1,
						"goal_cadence_frequency": 1,
						"goal_creation_month": "2024-01-01",
						"goal_target": 40000,
						"goal_percentage_complete": 100,
						"deleted": false
					},
					{
						"id": "cat-2",
						"category_group_id": "group-1",
						"category_group_name": "Immediate Obligations",
						"name": "Miscellaneous",
						"hidden": false,
						"budgeted": 5000,
						"activity": 0,
						"balance": 5000,
						"goal_type": null,
						"goal_target": null,
						"deleted": false
					}
				]
			}
		]
	}`

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/budget-1/categories",
		mock.Anything,
	).Return(mockResponse, nil)

	groups, err := client.Categories.List(context.Background(), "budget-1")

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Immediate Obligations", groups[0].Name)
	require.Len(t, groups[0].Categories, 2)

	groceries := groups[0].Categories[0]
	assert.Equal(t, int64(45000), groceries.Budgeted)
	require.NotNil(t, groceries.GoalType)
	assert.Equal(t, GoalPlanSpending, *groceries.GoalType)
	require.NotNil(t, groceries.GoalTarget)
	assert.Equal(t, int64(40000), *groceries.GoalTarget)
	require.NotNil(t, groceries.GoalCadence)
	assert.Equal(t, CadenceMonthly, *groceries.GoalCadence)
	assert.Nil(t, groceries.GoalDay)

	misc := groups[0].Categories[1]
	assert.Nil(t, misc.GoalType, "null goal_type must stay nil")
	assert.Nil(t, misc.GoalTarget)
	assert.False(t, misc.HasGoal())

	mockTransport.AssertExpectations(t)
}

func TestCategoryService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"category": {
			"id": "cat-1",
			"name": "Vacation",
			"budgeted": 20000,
			"goal_type": "TBD",
			"goal_target": 1200000,
			"goal_target_month": "2025-06-01",
			"goal_months_to_budget": 6,
			"goal_overall_left": 700000,
			"goal_overall_funded": 500000,
			"deleted": false
		}
	}`

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/budget-1/categories/cat-1",
		mock.Anything,
	).Return(mockResponse, nil)

	category, err := client.Categories.Get(context.Background(), "budget-1", "cat-1")

	require.NoError(t, err)
	require.NotNil(t, category)
	require.NotNil(t, category.GoalType)
	assert.Equal(t, GoalTargetBalanceByDate, *category.GoalType)
	require.NotNil(t, category.GoalMonthsToBudget)
	assert.Equal(t, 6, *category.GoalMonthsToBudget)
	require.NotNil(t, category.GoalTargetMonth)
	assert.Equal(t, "2025-06-01", *category.GoalTargetMonth)

	mockTransport.AssertExpectations(t)
}

func TestCategoryService_GetForMonth(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"category": {
			"id": "cat-1",
			"name": "Vacation",
			"budgeted": 100000,
			"goal_type": "TBD",
			"goal_months_to_budget": 5
		}
	}`

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/budget-1/months/2024-12-01/categories/cat-1",
		mock.Anything,
	).Return(mockResponse, nil)

	category, err := client.Categories.GetForMonth(context.Background(), "budget-1", "2024-12-01", "cat-1")

	require.NoError(t, err)
	assert.Equal(t, int64(100000), category.Budgeted)

	mockTransport.AssertExpectations(t)
}

func TestFlattenCategoryGroups(t *testing.T) {
	groups := []*CategoryGroupWithCategories{
		{
			CategoryGroup: CategoryGroup{ID: "group-1"},
			Categories: []*Category{
				{ID: "cat-1"},
				{ID: "cat-2"},
			},
		},
		nil,
		{
			CategoryGroup: CategoryGroup{ID: "group-2"},
			Categories:    []*Category{{ID: "cat-3"}},
		},
	}

	categories := FlattenCategoryGroups(groups)

	require.Len(t, categories, 3)
	assert.Equal(t, "cat-1", categories[0].ID)
	assert.Equal(t, "cat-3", categories[2].ID)
}
