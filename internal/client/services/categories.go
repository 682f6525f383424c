package services

import (
	"context"

	"github.com/dmitrijs2005/gophspend/internal/client/client"
	"github.com/dmitrijs2005/gophspend/internal/logging"
)

// DefaultCategories are created for a user who has none.
var DefaultCategories = []string{
	"Food & Dining",
	"Entertainment",
	"Transportation",
	"Shopping",
	"Bills & Utilities",
	"Healthcare",
	"Travel",
	"Education",
}

type CategoryService struct {
	api     client.CategoryAPI
	session Expirer
	logger  logging.Logger
}

func NewCategoryService(api client.CategoryAPI, session Expirer, logger logging.Logger) *CategoryService {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &CategoryService{api: api, session: session, logger: logger}
}

func (s *CategoryService) check(ctx context.Context, err error) error {
	return expireOnUnauthorized(ctx, s.session, s.logger, err)
}

func (s *CategoryService) List(ctx context.Context) ([]string, error) {
	names, err := s.api.ListCategories(ctx)
	if err != nil {
		return nil, s.check(ctx, err)
	}
	return names, nil
}

func (s *CategoryService) Create(ctx context.Context, name string) error {
	name, err := categoryName(name)
	if err != nil {
		return err
	}
	return s.check(ctx, s.api.CreateCategory(ctx, name))
}

func (s *CategoryService) Rename(ctx context.Context, name, newName string) error {
	name, err := categoryName(name)
	if err != nil {
		return err
	}
	newName, err = categoryName(newName)
	if err != nil {
		return err
	}
	return s.check(ctx, s.api.RenameCategory(ctx, name, newName))
}

func (s *CategoryService) Delete(ctx context.Context, name string) error {
	name, err := categoryName(name)
	if err != nil {
		return err
	}
	return s.check(ctx, s.api.DeleteCategory(ctx, name))
}

// SeedDefaults creates DefaultCategories when the user has no categories
// and returns the names it created. Creation stops at the first failure;
// categories created before it are kept and reported.
func (s *CategoryService) SeedDefaults(ctx context.Context) ([]string, error) {
	existing, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, nil
	}

	created := make([]string, 0, len(DefaultCategories))
	for _, name := range DefaultCategories {
		if err := s.Create(ctx, name); err != nil {
			return created, err
		}
		created = append(created, name)
	}
	s.logger.Info(ctx, "default categories created", "count", len(created))
	return created, nil
}
