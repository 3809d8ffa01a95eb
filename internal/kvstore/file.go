package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/folio/internal/domain"
	"github.com/spf13/afero"
)

var keyValidator = validator.New()

// FileStore persists each key as <dir>/<key>.json on an afero filesystem.
// Production uses the OS filesystem; tests use afero.NewMemMapFs.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory %q: %w", dir, err)
	}
	return &FileStore{fs: fs, dir: dir}, nil
}

// Load reads the file for key.
func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return data, nil
}

// Save writes value to a temporary file and renames it over the target so a
// crash never leaves a half-written snapshot behind.
func (s *FileStore) Save(ctx context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, value, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("rename %q: %w", tmp, err)
	}
	return nil
}

func (s *FileStore) path(key string) (string, error) {
	if err := keyValidator.Var(key, `required,max=128,excludesall=/\~`); err != nil || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Close is a no-op; files are closed after every write.
func (s *FileStore) Close(ctx context.Context) error { return nil }
