package targets

import (
	"testing"

	"github.com/eshaffer321/ynab-targets-go/pkg/ynab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Pointer helpers shared across the package tests

func i64p(v int64) *int64 {
	return &v
}

func intp(v int) *int {
	return &v
}

func strp(s string) *string {
	return &s
}

func goalp(t ynab.GoalType) *ynab.GoalType {
	return &t
}

func TestResolveGoalAmount_NoGoalDefault(t *testing.T) {
	needed := ResolveGoalAmount(&ynab.Category{}, "2024-12-01")

	require.NotNil(t, needed, "categories without goals contribute zero, not nil")
	assert.Equal(t, int64(0), *needed)
}

func TestResolveGoalAmount_NilCategory(t *testing.T) {
	needed := ResolveGoalAmount(nil, "2024-12-01")

	require.NotNil(t, needed)
	assert.Equal(t, int64(0), *needed)
}

func TestResolveGoalAmount_FutureGoalSuppression(t *testing.T) {
	category := &ynab.Category{
		GoalType:          goalp(ynab.GoalPlanSpending),
		GoalCreationMonth: strp("2025-01-01"),
		GoalTarget:        i64p(50000),
	}

	needed := ResolveGoalAmount(category, "2024-12-01")

	require.NotNil(t, needed)
	assert.Equal(t, int64(0), *needed)
}

func TestResolveGoalAmount_GoalCreatedThisMonthNotSuppressed(t *testing.T) {
	category := &ynab.Category{
		GoalType:             goalp(ynab.GoalPlanSpending),
		GoalCreationMonth:    strp("2024-12-01"),
		GoalTarget:           i64p(50000),
		GoalCadence:          intp(ynab.CadenceMonthly),
		GoalCadenceFrequency: intp(1),
	}

	needed := ResolveGoalAmount(category, "2024-12-01")

	require.NotNil(t, needed)
	assert.Equal(t, int64(50000), *needed)
}

func TestResolveGoalAmount_MonthlyCadence(t *testing.T) {
	category := &ynab.Category{
		GoalType:             goalp(ynab.GoalPlanSpending),
		GoalTarget:           i64p(40000),
		GoalCadence:          intp(ynab.CadenceMonthly),
		GoalCadenceFrequency: intp(1),
	}

	needed := ResolveGoalAmount(category, "2024-12-01")

	require.NotNil(t, needed)
	assert.Equal(t, int64(40000), *needed)
}

func TestResolveGoalAmount_WeeklyCadence(t *testing.T) {
	// December 2024 has five Mondays: the 2nd, 9th, 16th, 23rd, 30th
	category := &ynab.Category{
		GoalType:             goalp(ynab.GoalPlanSpending),
		GoalTarget:           i64p(100000),
		GoalCadence:          intp(ynab.CadenceWeekly),
		GoalCadenceFrequency: intp(1),
		GoalDay:              intp(1),
	}

	needed := ResolveGoalAmount(category, "2024-12-01")

	require.NotNil(t, needed)
	assert.Equal(t, int64(500000), *needed)
}

func TestResolveGoalAmount_WeeklyCadence_ShortMonthForm(t *testing.T) {
	category := &ynab.Category{
		GoalType:             goalp(ynab.GoalPlanSpending),
		GoalTarget:           i64p(100000),
		GoalCadence:          intp(ynab.CadenceWeekly),
		GoalCadenceFrequency: intp(1),
		GoalDay:              intp(1),
	}

	needed := ResolveGoalAmount(category, "2024-12")

	require.NotNil(t, needed)
	assert.Equal(t, int64(500000), *needed)
}

func TestResolveGoalAmount_CadenceTakesPrecedenceOverHorizon(t *testing.T) {
	tests := []struct {
		name     string
		category *ynab.Category
		want     int64
	}{
		{
			name: "weekly cadence beats funding horizon",
			category: &ynab.Category{
				GoalType:             goalp(ynab.GoalPlanSpending),
				GoalTarget:           i64p(100000),
				GoalCadence:          intp(ynab.CadenceWeekly),
				GoalCadenceFrequency: intp(1),
				GoalDay:              intp(1),
				GoalMonthsToBudget:   intp(3),
				GoalOverallLeft:      i64p(900000),
			},
			want: 500000,
		},
		{
			name: "monthly cadence beats funding horizon",
			category: &ynab.Category{
				GoalType:             goalp(ynab.GoalPlanSpending),
				GoalTarget:           i64p(40000),
				GoalCadence:          intp(ynab.CadenceMonthly),
				GoalCadenceFrequency: intp(1),
				GoalMonthsToBudget:   intp(3),
				GoalOverallLeft:      i64p(900000),
			},
			want: 40000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			needed := ResolveGoalAmount(tt.category, "2024-12-01")

			require.NotNil(t, needed)
			assert.Equal(t, tt.want, *needed)
		})
	}
}

func TestResolveGoalAmount_WeeklyCadence_InvalidInputsFallThrough(t *testing.T) {
	tests := []struct {
		name    string
		day     *int
		month   string
		target  *int64
		want    *int64
		wantNil bool
	}{
		{
			name:   "goal day out of range",
			day:    intp(9),
			month:  "2024-12-01",
			target: i64p(100000),
			want:   i64p(100000),
		},
		{
			name:   "goal day negative",
			day:    intp(-1),
			month:  "2024-12-01",
			target: i64p(100000),
			want:   i64p(100000),
		},
		{
			name:   "goal day absent",
			day:    nil,
			month:  "2024-12-01",
			target: i64p(100000),
			want:   i64p(100000),
		},
		{
			name:   "malformed analysis month",
			day:    intp(1),
			month:  "not-a-month",
			target: i64p(100000),
			want:   i64p(100000),
		},
		{
			name:    "malformed month and absent target",
			day:     intp(1),
			month:   "12/2024",
			target:  nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category := &ynab.Category{
				GoalType:             goalp(ynab.GoalPlanSpending),
				GoalTarget:           tt.target,
				GoalCadence:          intp(ynab.CadenceWeekly),
				GoalCadenceFrequency: intp(1),
				GoalDay:              tt.day,
			}

			needed := ResolveGoalAmount(category, tt.month)

			if tt.wantNil {
				assert.Nil(t, needed)
				return
			}
			require.NotNil(t, needed)
			assert.Equal(t, *tt.want, *needed)
		})
	}
}

func TestResolveGoalAmount_FundingHorizon(t *testing.T) {
	category := &ynab.Category{
		GoalType:           goalp(ynab.GoalTargetBalanceByDate),
		GoalMonthsToBudget: intp(4),
		GoalOverallLeft:    i64p(100000),
		Budgeted:           20000,
	}

	needed := ResolveGoalAmount(category, "2024-12-01")

	require.NotNil(t, needed)
	assert.Equal(t, int64(30000), *needed)
}

func TestResolveGoalAmount_FundingHorizon_Rounding(t *testing.T) {
	category := &ynab.Category{
		GoalType:           goalp(ynab.GoalTargetBalanceByDate),
		GoalMonthsToBudget: intp(3),
		GoalOverallLeft:    i64p(100000),
	}

	needed := ResolveGoalAmount(category, "2024-12-01")

	require.NotNil(t, needed)
	assert.Equal(t, int64(33333), *needed)
}

func TestResolveGoalAmount_FundingHorizon_MissingOverallLeft(t *testing.T) {
	category := &ynab.Category{
		GoalType:           goalp(ynab.GoalTargetBalance),
		GoalMonthsToBudget: intp(4),
		Budgeted:           20000,
	}

	needed := ResolveGoalAmount(category, "2024-12-01")

	require.NotNil(t, needed)
	assert.Equal(t, int64(5000), *needed)
}

func TestResolveGoalAmount_ExhaustedHorizon(t *testing.T) {
	for _, months := range []int{0, -2} {
		category := &ynab.Category{
			GoalType:           goalp(ynab.GoalTargetBalanceByDate),
			GoalMonthsToBudget: intp(months),
			GoalOverallLeft:    i64p(100000),
			GoalTarget:         i64p(500000),
		}

		needed := ResolveGoalAmount(category, "2024-12-01")

		require.NotNil(t, needed)
		assert.Equal(t, int64(0), *needed)
	}
}

func TestResolveGoalAmount_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		category *ynab.Category
		want     *int64
		wantNil  bool
	}{
		{
			name: "monthly funding goal",
			category: &ynab.Category{
				GoalType:   goalp(ynab.GoalMonthlyFunding),
				GoalTarget: i64p(25000),
			},
			want: i64p(25000),
		},
		{
			name: "target balance goal without horizon or target",
			category: &ynab.Category{
				GoalType: goalp(ynab.GoalTargetBalance),
			},
			wantNil: true,
		},
		{
			name: "debt goal with target",
			category: &ynab.Category{
				GoalType:   goalp(ynab.GoalDebt),
				GoalTarget: i64p(150000),
			},
			want: i64p(150000),
		},
		{
			name: "spending goal with non-matching cadence",
			category: &ynab.Category{
				GoalType:             goalp(ynab.GoalPlanSpending),
				GoalTarget:           i64p(120000),
				GoalCadence:          intp(ynab.CadenceYearly),
				GoalCadenceFrequency: intp(1),
			},
			want: i64p(120000),
		},
		{
			name: "unknown goal type",
			category: &ynab.Category{
				GoalType:   goalp(ynab.GoalType("XYZ")),
				GoalTarget: i64p(75000),
			},
			want: i64p(75000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			needed := ResolveGoalAmount(tt.category, "2024-12-01")

			if tt.wantNil {
				assert.Nil(t, needed)
				return
			}
			require.NotNil(t, needed)
			assert.Equal(t, *tt.want, *needed)
		})
	}
}

func TestResolveGoalAmount_NeverNegative(t *testing.T) {
	category := &ynab.Category{
		GoalType:   goalp(ynab.GoalMonthlyFunding),
		GoalTarget: i64p(-5000),
	}

	needed := ResolveGoalAmount(category, "2024-12-01")

	require.NotNil(t, needed)
	assert.Equal(t, int64(0), *needed)
}

func TestResolveGoalAmount_Idempotent(t *testing.T) {
	category := &ynab.Category{
		GoalType:             goalp(ynab.GoalPlanSpending),
		GoalTarget:           i64p(100000),
		GoalCadence:          intp(ynab.CadenceWeekly),
		GoalCadenceFrequency: intp(1),
		GoalDay:              intp(1),
	}

	first := ResolveGoalAmount(category, "2024-12-01")
	second := ResolveGoalAmount(category, "2024-12-01")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestResolveGoalAmount_HorizonMonotonicInBudgeted(t *testing.T) {
	var previous int64 = -1
	for _, budgeted := range []int64{0, 10000, 20000, 50000, 100000} {
		category := &ynab.Category{
			GoalType:           goalp(ynab.GoalTargetBalanceByDate),
			GoalMonthsToBudget: intp(4),
			GoalOverallLeft:    i64p(100000),
			Budgeted:           budgeted,
		}

		needed := ResolveGoalAmount(category, "2024-12-01")

		require.NotNil(t, needed)
		assert.GreaterOrEqual(t, *needed, previous, "needed must not decrease as budgeted grows")
		previous = *needed
	}
}
