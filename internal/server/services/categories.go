package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/gophspend/internal/dbx"
	"github.com/dmitrijs2005/gophspend/internal/server/repositories/repomanager"
)

// CategoryService manages a user's category names. Expenses reference
// categories by name, so a rename is carried over to them.
type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

func (s *CategoryService) List(ctx context.Context, userID int64) ([]string, error) {
	return s.repomanager.Categories(s.db).List(ctx, userID)
}

func (s *CategoryService) Create(ctx context.Context, userID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("Category name is required")
	}
	return s.repomanager.Categories(s.db).Create(ctx, userID, name)
}

func (s *CategoryService) Rename(ctx context.Context, userID int64, name, newName string) error {
	newName = strings.TrimSpace(newName)
	if name == "" || newName == "" {
		return invalid("Category name is required")
	}
	if name == newName {
		return nil
	}

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Categories(tx).Rename(ctx, userID, name, newName); err != nil {
			return err
		}
		_, err := s.repomanager.Expenses(tx).RenameCategory(ctx, userID, name, newName)
		return err
	})
}

// Delete removes the category. Expenses filed under it keep the name.
func (s *CategoryService) Delete(ctx context.Context, userID int64, name string) error {
	if name == "" {
		return invalid("Category name is required")
	}
	return s.repomanager.Categories(s.db).Delete(ctx, userID, name)
}
