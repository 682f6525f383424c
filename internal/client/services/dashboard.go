package services

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/gophspend/internal/client/client"
	"github.com/dmitrijs2005/gophspend/internal/client/models"
	"github.com/dmitrijs2005/gophspend/internal/logging"
)

// CategoryShare is one category's slice of the period total.
type CategoryShare struct {
	Name   string
	Amount float64
	Share  float64 // 0..1
}

// Summary is the dashboard view of a period.
type Summary struct {
	Period     string
	StartDate  string
	EndDate    string
	Total      float64
	Count      int
	ByCategory []CategoryShare
	ByDay      []models.ExpensePerDay
	Largest    *models.Expense
}

type DashboardService struct {
	expenses *ExpenseService
	logger   logging.Logger
}

func NewDashboardService(expenses *ExpenseService, logger logging.Logger) *DashboardService {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &DashboardService{expenses: expenses, logger: logger}
}

// Summary fetches a period (month when blank) and aggregates it.
func (s *DashboardService) Summary(ctx context.Context, period string) (*Summary, error) {
	if period == "" {
		period = client.DefaultPeriod
	}
	resp, err := s.expenses.List(ctx, client.ExpenseQuery{Period: period})
	if err != nil {
		return nil, err
	}
	sum := Summarize(resp)
	sum.Period = period
	return sum, nil
}

// Summarize aggregates a list response. Server-side aggregates are used when
// present and recomputed from the expenses otherwise.
func Summarize(resp *models.ExpensesResponse) *Summary {
	sum := &Summary{}
	if resp == nil {
		return sum
	}
	sum.StartDate = resp.StartDate
	sum.EndDate = resp.EndDate
	sum.Count = len(resp.Expenses)

	var total float64
	perCat := make(map[string]float64)
	perDay := make(map[string]float64)
	for i := range resp.Expenses {
		e := &resp.Expenses[i]
		total += e.Amount
		perCat[e.CategoryName] += e.Amount
		perDay[e.Date] += e.Amount
		if sum.Largest == nil || e.Amount > sum.Largest.Amount {
			sum.Largest = e
		}
	}

	sum.Total = resp.TotalAmount
	if sum.Total == 0 {
		sum.Total = total
	}

	if len(resp.ExpensesPerCategory) > 0 {
		perCat = make(map[string]float64, len(resp.ExpensesPerCategory))
		for _, c := range resp.ExpensesPerCategory {
			perCat[c.CategoryName] += c.Amount
		}
	}
	for name, amount := range perCat {
		share := 0.0
		if sum.Total > 0 {
			share = amount / sum.Total
		}
		sum.ByCategory = append(sum.ByCategory, CategoryShare{Name: name, Amount: amount, Share: share})
	}
	sort.Slice(sum.ByCategory, func(i, j int) bool {
		a, b := sum.ByCategory[i], sum.ByCategory[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Name < b.Name
	})

	if len(resp.ExpensesPerDay) > 0 {
		perDay = make(map[string]float64, len(resp.ExpensesPerDay))
		for _, d := range resp.ExpensesPerDay {
			perDay[d.Date] += d.Amount
		}
	}
	for date, amount := range perDay {
		sum.ByDay = append(sum.ByDay, models.ExpensePerDay{Date: date, Amount: amount})
	}
	sort.Slice(sum.ByDay, func(i, j int) bool { return sum.ByDay[i].Date < sum.ByDay[j].Date })

	return sum
}
