package categories

import "context"

// Repository stores per-user category names.
type Repository interface {
	List(ctx context.Context, userID int64) ([]string, error)
	Create(ctx context.Context, userID int64, name string) error
	Rename(ctx context.Context, userID int64, name, newName string) error
	Delete(ctx context.Context, userID int64, name string) error
	Exists(ctx context.Context, userID int64, name string) (bool, error)
}
