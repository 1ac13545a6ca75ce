package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"nocheckin/internal/domain"
)

const sqliteFilename = "nocheckin.db"

// Options selects and configures the backend built by Open.
type Options struct {
	Kind       string // KindFile or KindSQLite
	Dir        string // home directory holding the state
	Passphrase string // when set, the settings bucket is written sealed
}

// Open builds the configured backend under opts.Dir and wraps it in a State.
func Open(ctx context.Context, opts Options) (*State, error) {
	if err := os.MkdirAll(opts.Dir, 0o700); err != nil {
		return nil, err
	}

	var backend Backend
	switch opts.Kind {
	case "", KindFile:
		backend = NewFileBackend(opts.Dir)
	case KindSQLite:
		b, err := NewSQLiteBackend(ctx, filepath.Join(opts.Dir, sqliteFilename))
		if err != nil {
			return nil, err
		}
		backend = b
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Kind)
	}

	backend = NewSealedBackend(backend, opts.Passphrase, domain.BucketSettings)
	return NewState(backend), nil
}
