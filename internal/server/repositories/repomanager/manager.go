package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophspend/internal/dbx"
	"github.com/dmitrijs2005/gophspend/internal/server/repositories/categories"
	"github.com/dmitrijs2005/gophspend/internal/server/repositories/expenses"
	"github.com/dmitrijs2005/gophspend/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Categories(db dbx.DBTX) categories.Repository
	Expenses(db dbx.DBTX) expenses.Repository
}
