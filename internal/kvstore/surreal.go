package kvstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

const surrealTable = "kv"

type surrealRecord struct {
	Value string `json:"value"`
}

// SurrealStore keeps each key as a record in the "kv" table, so the snapshot
// survives on a shared SurrealDB instance.
type SurrealStore struct {
	db *surrealdb.DB
}

// NewSurrealStore wraps an existing connection.
func NewSurrealStore(db *surrealdb.DB) *SurrealStore {
	return &SurrealStore{db: db}
}

// Connect creates and configures a new SurrealDB connection.
func Connect(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.GetDBUrl())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb: %w", err)
	}

	if cfg.GetDBUser() != "" {
		authData := &surrealdb.Auth{
			Username: cfg.GetDBUser(),
			Password: cfg.GetDBPass(),
		}
		if _, err = db.SignIn(ctx, authData); err != nil {
			db.Close(ctx)
			return nil, fmt.Errorf("failed to sign in: %w", err)
		}
	}

	if err = db.Use(ctx, cfg.GetDBNs(), cfg.GetDBDb()); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/db: %w", err)
	}

	slog.Info("Successfully connected to SurrealDB", "namespace", cfg.GetDBNs(), "database", cfg.GetDBDb())
	return db, nil
}

// Load selects the record for key.
func (s *SurrealStore) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM type::thing($tb, $key)`
	results, err := surrealdb.Query[[]surrealRecord](ctx, s.db, query, map[string]any{
		"tb":  surrealTable,
		"key": key,
	})
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, domain.ErrNotFound
	}
	return []byte((*results)[0].Result[0].Value), nil
}

// Save upserts the record for key.
func (s *SurrealStore) Save(ctx context.Context, key string, value []byte) error {
	query := `UPSERT type::thing($tb, $key) CONTENT { value: $value, updated_at: time::now() }`
	if _, err := surrealdb.Query[any](ctx, s.db, query, map[string]any{
		"tb":    surrealTable,
		"key":   key,
		"value": string(value),
	}); err != nil {
		return fmt.Errorf("query execution failed: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *SurrealStore) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}
