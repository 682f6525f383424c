package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophspend/internal/client/client"
	"github.com/dmitrijs2005/gophspend/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExpenses() []models.Expense {
	return []models.Expense{
		{ID: 1, Amount: 30, Date: "2024-06-02", CategoryName: "Food & Dining"},
		{ID: 2, Amount: 50, Date: "2024-06-01", CategoryName: "Travel"},
		{ID: 3, Amount: 20, Date: "2024-06-02", CategoryName: "Food & Dining"},
	}
}

func TestSummarize_ComputesAggregates(t *testing.T) {
	sum := Summarize(&models.ExpensesResponse{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
		Expenses:  sampleExpenses(),
	})

	assert.Equal(t, 100.0, sum.Total)
	assert.Equal(t, 3, sum.Count)
	require.NotNil(t, sum.Largest)
	assert.Equal(t, int64(2), sum.Largest.ID)

	wantCats := []CategoryShare{
		{Name: "Food & Dining", Amount: 50, Share: 0.5},
		{Name: "Travel", Amount: 50, Share: 0.5},
	}
	if diff := cmp.Diff(wantCats, sum.ByCategory, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("ByCategory mismatch (-want +got):\n%s", diff)
	}

	wantDays := []models.ExpensePerDay{{Date: "2024-06-01", Amount: 50}, {Date: "2024-06-02", Amount: 50}}
	assert.Equal(t, wantDays, sum.ByDay)
}

func TestSummarize_PrefersServerAggregates(t *testing.T) {
	sum := Summarize(&models.ExpensesResponse{
		Expenses:            sampleExpenses(),
		TotalAmount:         200,
		ExpensesPerCategory: []models.ExpensePerCategory{{CategoryName: "Travel", Amount: 150}, {CategoryName: "Food & Dining", Amount: 50}},
		ExpensesPerDay:      []models.ExpensePerDay{{Date: "2024-06-03", Amount: 200}},
	})

	assert.Equal(t, 200.0, sum.Total)
	require.Len(t, sum.ByCategory, 2)
	assert.Equal(t, "Travel", sum.ByCategory[0].Name)
	assert.InDelta(t, 0.75, sum.ByCategory[0].Share, 1e-9)
	assert.Equal(t, []models.ExpensePerDay{{Date: "2024-06-03", Amount: 200}}, sum.ByDay)
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(&models.ExpensesResponse{})
	assert.Zero(t, sum.Total)
	assert.Empty(t, sum.ByCategory)
	assert.Nil(t, sum.Largest)

	assert.NotNil(t, Summarize(nil))
}

func TestDashboardService_DefaultsToMonth(t *testing.T) {
	api := &fakeExpenses{list: &models.ExpensesResponse{Expenses: sampleExpenses()}}
	svc := NewDashboardService(NewExpenseService(api, &recordingExpirer{}, nil), nil)

	sum, err := svc.Summary(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, client.DefaultPeriod, sum.Period)
	assert.Equal(t, []client.ExpenseQuery{{Period: "month"}}, api.queries)
}
