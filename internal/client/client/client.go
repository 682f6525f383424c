package client

import (
	"context"

	"github.com/dmitrijs2005/gophspend/internal/client/models"
)

// AuthAPI covers the unauthenticated endpoints.
type AuthAPI interface {
	SignIn(ctx context.Context, identity, password string) (*models.LoginResponse, error)
	SignUp(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)
}

// CategoryAPI covers /api/v1/categories. Categories are identified by name.
type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]string, error)
	CreateCategory(ctx context.Context, name string) error
	RenameCategory(ctx context.Context, name, newName string) error
	DeleteCategory(ctx context.Context, name string) error
}

// ExpenseAPI covers /api/v1/expenses.
type ExpenseAPI interface {
	ListExpenses(ctx context.Context, q ExpenseQuery) (*models.ExpensesResponse, error)
	CreateExpense(ctx context.Context, e models.ExpenseCreate) (*models.Expense, error)
	UpdateExpense(ctx context.Context, e models.ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
}

// Client is the full finance API.
type Client interface {
	AuthAPI
	CategoryAPI
	ExpenseAPI
}
