package tokenstore

import (
	"context"
	"fmt"
)

// Store is a small persistent key-value store for string secrets.
//
// Contract:
//   - Get returns ("", false, nil) for a missing key; it never fails because
//     a key is absent.
//   - Set overwrites any previous value.
//   - Delete is a no-op for a missing key.
//   - Clear removes every entry managed by this store.
//
// Failures of the underlying platform storage are reported as *StorageError.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// StorageError describes a failed operation against platform storage.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op, key string, err error) error {
	return &StorageError{Op: op, Key: key, Err: err}
}
