package users

import (
	"context"

	"github.com/dmitrijs2005/gophspend/internal/server/models"
)

// LoginField is a column a user can be looked up by.
type LoginField string

const (
	ByUsername LoginField = "username"
	ByEmail    LoginField = "email"
	ByPhone    LoginField = "wa_number"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, field LoginField, login string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}
