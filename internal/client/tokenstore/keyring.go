package tokenstore

import (
	"context"
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps entries in the OS keyring. Every key is stored as an
// account under one service name, so Clear only touches this application's
// secrets.
type KeyringStore struct {
	service string
}

func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

func (k *KeyringStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	v, err := keyring.Get(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storageErr("get", key, err)
	}
	return v, true, nil
}

func (k *KeyringStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := keyring.Set(k.service, key, value); err != nil {
		return storageErr("set", key, err)
	}
	return nil
}

func (k *KeyringStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := keyring.Delete(k.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return storageErr("delete", key, err)
	}
	return nil
}

func (k *KeyringStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := keyring.DeleteAll(k.service)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return storageErr("clear", "", err)
	}
	return nil
}

func (k *KeyringStore) Close() error { return nil }
