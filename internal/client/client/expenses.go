package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophspend/internal/client/models"
)

const (
	expensesPath  = "/api/v1/expenses"
	DefaultPeriod = "month"
)

// ExpenseQuery selects expenses either by a period keyword (day, week,
// month, year, ...) or by an inclusive date range. Period wins if both are
// set; an empty query means DefaultPeriod.
type ExpenseQuery struct {
	Period string
	From   time.Time
	To     time.Time
}

func (q ExpenseQuery) request() request {
	if q.Period == "" && (q.From.IsZero() || q.To.IsZero()) {
		q.Period = DefaultPeriod
	}
	if q.Period != "" {
		return request{method: http.MethodGet, path: expensesPath + "/" + url.PathEscape(q.Period), auth: true}
	}
	return request{
		method: http.MethodGet,
		path:   expensesPath + "/daterange",
		query: url.Values{
			"start_date": {models.FormatDate(q.From)},
			"end_date":   {models.FormatDate(q.To)},
		},
		auth: true,
	}
}

func (c *HTTPClient) ListExpenses(ctx context.Context, q ExpenseQuery) (*models.ExpensesResponse, error) {
	var resp models.ExpensesResponse
	if err := c.do(ctx, q.request(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateExpense(ctx context.Context, e models.ExpenseCreate) (*models.Expense, error) {
	var resp models.Expense
	if err := c.do(ctx, request{method: http.MethodPost, path: expensesPath, body: e, auth: true}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateExpense(ctx context.Context, e models.ExpenseUpdate) (*models.Expense, error) {
	var resp models.Expense
	if err := c.do(ctx, request{method: http.MethodPut, path: expensesPath, body: e, auth: true}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteExpense(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   expensesPath + "/" + strconv.FormatInt(id, 10),
		auth:   true,
	}, nil)
}
