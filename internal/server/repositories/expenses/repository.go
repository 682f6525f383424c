package expenses

import (
	"context"

	"github.com/dmitrijs2005/gophspend/internal/server/models"
)

// Repository stores per-user expenses. Dates are YYYY-MM-DD strings, which
// compare correctly as text.
type Repository interface {
	Create(ctx context.Context, e *models.Expense) (*models.Expense, error)
	Get(ctx context.Context, userID, id int64) (*models.Expense, error)
	Update(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, userID, id int64) error
	// ListBetween returns expenses with from <= date <= to, newest first.
	// Empty bounds are open.
	ListBetween(ctx context.Context, userID int64, from, to string) ([]models.Expense, error)
	RenameCategory(ctx context.Context, userID int64, name, newName string) (int64, error)
}
