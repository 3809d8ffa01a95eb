package kvstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// ErrWatchUnsupported is returned by Watch when the backing filesystem is not
// the OS filesystem.
var ErrWatchUnsupported = errors.New("watch requires the OS filesystem")

// Watcher is implemented by backends that can report written keys. Writes
// made through the watching store itself are reported too.
type Watcher interface {
	Watch(ctx context.Context, onChange func(key string)) error
}

var _ Watcher = (*FileStore)(nil)

// Watch calls onChange with the key of every snapshot file created or
// replaced in the store directory until ctx ends. Temporary files are ignored.
func (s *FileStore) Watch(ctx context.Context, onChange func(key string)) error {
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return ErrWatchUnsupported
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(s.dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %q: %w", s.dir, err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
					continue
				}
				if key, ok := keyFromPath(ev.Name); ok {
					onChange(key)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("Store directory watch error", "dir", s.dir, "error", err)
			}
		}
	}()
	return nil
}

func keyFromPath(path string) (string, bool) {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, ".json") {
		return "", false
	}
	return strings.TrimSuffix(name, ".json"), true
}
