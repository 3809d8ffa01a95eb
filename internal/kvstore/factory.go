package kvstore

import (
	"context"
	"fmt"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/domain"
	"github.com/spf13/afero"
)

// Store is a KeyValueStore that owns a resource which must be released.
type Store interface {
	domain.KeyValueStore
	Close(ctx context.Context) error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FileStore)(nil)
	_ Store = (*SurrealStore)(nil)
)

// New creates the backend selected by STORE_BACKEND.
func New(ctx context.Context, cfg config.Provider) (Store, error) {
	switch cfg.GetStoreBackend() {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendFile:
		return NewFileStore(afero.NewOsFs(), cfg.GetStoreDir())
	case config.BackendSurreal:
		db, err := Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewSurrealStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.GetStoreBackend())
	}
}
