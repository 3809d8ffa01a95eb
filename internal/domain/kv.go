package domain

import "context"

// KeyValueStore is the durable collaborator the portfolio persists into.
// Each record lives under one fixed key as a JSON snapshot.
type KeyValueStore interface {
	// Load returns the bytes stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the bytes stored under key.
	Save(ctx context.Context, key string, value []byte) error
}
