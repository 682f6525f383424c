package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophspend/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	body   map[string]any
}

func recordingServer(t *testing.T, status int, reply string) (*httptest.Server, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, auth: r.Header.Get("Authorization")}
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			assert.NoError(t, json.Unmarshal(b, &rec.body))
		}
		calls = append(calls, rec)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		srv, calls := recordingServer(t, http.StatusOK, `{"names":["Food","Travel"]}`)
		names, err := New(srv.URL, StaticTokens("tok")).ListCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Food", "Travel"}, names)
		assert.Equal(t, "Bearer tok", (*calls)[0].auth)
	})

	t.Run("list null names", func(t *testing.T) {
		srv, _ := recordingServer(t, http.StatusOK, `{"names":null}`)
		names, err := New(srv.URL, StaticTokens("tok")).ListCategories(ctx)
		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})

	t.Run("mutations", func(t *testing.T) {
		srv, calls := recordingServer(t, http.StatusOK, `true`)
		c := New(srv.URL, StaticTokens("tok"))

		require.NoError(t, c.CreateCategory(ctx, "Food"))
		require.NoError(t, c.RenameCategory(ctx, "Food", "Groceries"))
		require.NoError(t, c.DeleteCategory(ctx, "Groceries"))

		want := []recorded{
			{method: "POST", path: "/api/v1/categories", auth: "Bearer tok", body: map[string]any{"name": "Food"}},
			{method: "PUT", path: "/api/v1/categories", auth: "Bearer tok", body: map[string]any{"name": "Food", "new_name": "Groceries"}},
			{method: "DELETE", path: "/api/v1/categories", auth: "Bearer tok", body: map[string]any{"name": "Groceries"}},
		}
		assert.Empty(t, cmp.Diff(want, *calls, cmp.AllowUnexported(recorded{})))
	})

	t.Run("error detail", func(t *testing.T) {
		srv, _ := recordingServer(t, http.StatusBadRequest, `{"detail":"Category already exists"}`)
		err := New(srv.URL, StaticTokens("tok")).CreateCategory(ctx, "Food")
		require.EqualError(t, err, "Category already exists")
	})
}

func TestListExpenses_Routing(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		q         ExpenseQuery
		wantPath  string
		wantQuery string
	}{
		{name: "empty means month", q: ExpenseQuery{}, wantPath: "/api/v1/expenses/month"},
		{name: "period", q: ExpenseQuery{Period: "week"}, wantPath: "/api/v1/expenses/week"},
		{name: "period wins", q: ExpenseQuery{Period: "year", From: from, To: to}, wantPath: "/api/v1/expenses/year"},
		{name: "date range", q: ExpenseQuery{From: from, To: to}, wantPath: "/api/v1/expenses/daterange", wantQuery: "end_date=2024-01-31&start_date=2024-01-01"},
		{name: "half range falls back", q: ExpenseQuery{From: from}, wantPath: "/api/v1/expenses/month"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := recordingServer(t, http.StatusOK, `{"expenses":[],"total_amount":0}`)
			_, err := New(srv.URL, StaticTokens("tok")).ListExpenses(context.Background(), tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, (*calls)[0].path)
			assert.Equal(t, tt.wantQuery, (*calls)[0].query)
		})
	}
}

func TestListExpenses_Decodes(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusOK, `{
		"start_date":"2024-01-01","end_date":"2024-01-31",
		"expenses":[{"id":1,"amount":12.5,"description":"lunch","date":"2024-01-02","category_name":"Food"}],
		"expenses_per_category":[{"category_name":"Food","amount":12.5}],
		"expenses_per_day":[{"date":"2024-01-02","amount":12.5}],
		"total_amount":12.5}`)

	resp, err := New(srv.URL, StaticTokens("tok")).ListExpenses(context.Background(), ExpenseQuery{})
	require.NoError(t, err)

	want := &models.ExpensesResponse{
		StartDate:           "2024-01-01",
		EndDate:             "2024-01-31",
		Expenses:            []models.Expense{{ID: 1, Amount: 12.5, Description: "lunch", Date: "2024-01-02", CategoryName: "Food"}},
		ExpensesPerCategory: []models.ExpensePerCategory{{CategoryName: "Food", Amount: 12.5}},
		ExpensesPerDay:      []models.ExpensePerDay{{Date: "2024-01-02", Amount: 12.5}},
		TotalAmount:         12.5,
	}
	assert.Empty(t, cmp.Diff(want, resp))
}

func TestExpenseMutations(t *testing.T) {
	ctx := context.Background()
	srv, calls := recordingServer(t, http.StatusOK, `{"id":9,"amount":3,"description":"tea","date":"2024-02-01","category_name":"Food"}`)
	c := New(srv.URL, StaticTokens("tok"))

	created, err := c.CreateExpense(ctx, models.ExpenseCreate{Amount: 3, Description: "tea", Date: "2024-02-01", CategoryName: "Food"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)

	amount := 4.0
	_, err = c.UpdateExpense(ctx, models.ExpenseUpdate{ID: 9, Amount: &amount})
	require.NoError(t, err)

	require.NoError(t, c.DeleteExpense(ctx, 9))

	require.Len(t, *calls, 3)
	assert.Equal(t, "POST", (*calls)[0].method)
	assert.Equal(t, map[string]any{"amount": 3.0, "description": "tea", "date": "2024-02-01", "category_name": "Food"}, (*calls)[0].body)
	assert.Equal(t, "PUT", (*calls)[1].method)
	assert.Equal(t, map[string]any{"id": 9.0, "amount": 4.0, "description": nil, "date": nil, "category_name": nil}, (*calls)[1].body)
	assert.Equal(t, "DELETE", (*calls)[2].method)
	assert.Equal(t, "/api/v1/expenses/9", (*calls)[2].path)
}

func TestDeleteExpense_NotFound(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusNotFound, `{"detail":"Expense not found"}`)
	err := New(srv.URL, StaticTokens("tok")).DeleteExpense(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Expense not found", err.Error())
}
