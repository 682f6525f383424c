package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophspend/internal/logging"
	"github.com/zalando/go-keyring"
)

// Backend names accepted by Open.
const (
	BackendAuto    = "auto"
	BackendKeyring = "keyring"
	BackendFile    = "file"
	BackendMemory  = "memory"
)

const probeKey = "__probe__"

// keyringProbe reports whether the OS keyring answers at all. It is a
// package variable so tests can simulate machines without a keyring.
var keyringProbe = func(service string) error {
	_, err := keyring.Get(service, probeKey)
	if err == nil || errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// Options selects and configures the backend.
type Options struct {
	Backend string
	// Path is the SQLite DSN for the file backend.
	Path string
	// Service is the keyring service name.
	Service string
	// NoCache disables the read-through cache.
	NoCache bool
	Logger  logging.Logger
}

// Open builds the store once at startup and reports which backend was used.
func Open(ctx context.Context, opts Options) (Store, string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewDiscard()
	}

	backend := opts.Backend
	if backend == "" || backend == BackendAuto {
		if err := keyringProbe(opts.Service); err != nil {
			logger.Info(ctx, "keyring unavailable, using file storage", "error", err)
			backend = BackendFile
		} else {
			backend = BackendKeyring
		}
	}

	var (
		store Store
		err   error
	)
	switch backend {
	case BackendKeyring:
		store = NewKeyringStore(opts.Service)
	case BackendFile:
		store, err = OpenSQLiteStore(ctx, opts.Path)
		if err != nil {
			return nil, "", err
		}
	case BackendMemory:
		store = NewMemoryStore()
	default:
		return nil, "", fmt.Errorf("unknown storage backend %q", backend)
	}

	logger.Debug(ctx, "token store opened", "backend", backend)

	if opts.NoCache {
		return store, backend, nil
	}
	return Cached(store), backend, nil
}
