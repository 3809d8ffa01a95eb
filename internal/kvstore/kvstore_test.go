package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, store domain.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load missing key", func(t *testing.T) {
		_, err := store.Load(ctx, "robinho_items")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Save then Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "robinho_items", []byte(`[{"id":"1"}]`)))

		got, err := store.Load(ctx, "robinho_items")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"1"}]`, string(got))
	})

	t.Run("Save overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "robinho_items", []byte(`[]`)))

		got, err := store.Load(ctx, "robinho_items")
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(got))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "robinho_profile", []byte(`{}`)))

		got, err := store.Load(ctx, "robinho_items")
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(got))
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	exerciseStore(t, store)
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, store.Save(ctx, "k", value))
	value[0] = 'z'

	got, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileStore_Unit(t *testing.T) {
	// No disk I/O: the store writes into an in-memory filesystem.
	memFs := afero.NewMemMapFs()
	store, err := NewFileStore(memFs, "data")
	require.NoError(t, err)

	exerciseStore(t, store)

	t.Run("writes one json file per key", func(t *testing.T) {
		exists, err := afero.Exists(memFs, filepath.Join("data", "robinho_items.json"))
		require.NoError(t, err)
		assert.True(t, exists)

		tmpExists, err := afero.Exists(memFs, filepath.Join("data", "robinho_items.json.tmp"))
		require.NoError(t, err)
		assert.False(t, tmpExists, "temporary file should be renamed away")
	})

	t.Run("rejects unsafe keys", func(t *testing.T) {
		ctx := context.Background()
		for _, key := range []string{"", "../escape", "a/b", `a\b`, "~home"} {
			assert.Error(t, store.Save(ctx, key, []byte("x")), "key %q", key)
			_, err := store.Load(ctx, key)
			assert.Error(t, err, "key %q", key)
		}
	})
}

func TestFileStore_ReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("data", 0o755))
	store := &FileStore{fs: afero.NewReadOnlyFs(base), dir: "data"}

	err := store.Save(context.Background(), "robinho_items", []byte("[]"))
	assert.Error(t, err)
}

func TestNew_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, err := New(ctx, &config.Config{StoreBackend: config.BackendMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
	})

	t.Run("file", func(t *testing.T) {
		store, err := New(ctx, &config.Config{StoreBackend: config.BackendFile, StoreDir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &FileStore{}, store)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := New(ctx, &config.Config{StoreBackend: "etcd"})
		assert.Error(t, err)
	})
}
