package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"reflect"

	"github.com/nfrund/folio/internal/domain"
)

// Reload re-reads the three records and adopts whichever differ from the
// in-memory copy, announcing each one that changed. A record that is missing,
// unparseable or identical to this store's last write keeps its current
// value. Records are adopted as stored; the legacy-title cleanup only runs in
// Open. Used when another process, such as folio-cli, edits the collaborator
// underneath a running server.
func (s *Store) Reload(ctx context.Context) error {
	var changed []Record

	s.mu.Lock()
	if blocks, ok := reloadRecord[[]domain.ContentBlock](ctx, s, s.keys.Blocks); ok {
		if blocks == nil {
			blocks = []domain.ContentBlock{}
		}
		if !reflect.DeepEqual(blocks, s.blocks) {
			s.blocks = blocks
			changed = append(changed, RecordBlocks)
		}
	}
	if profile, ok := reloadRecord[domain.Profile](ctx, s, s.keys.Profile); ok && profile != s.profile {
		s.profile = profile
		changed = append(changed, RecordProfile)
	}
	if visitors, ok := reloadRecord[[]domain.Visitor](ctx, s, s.keys.Visitors); ok {
		if visitors == nil {
			visitors = []domain.Visitor{}
		}
		if !reflect.DeepEqual(visitors, s.visitors) {
			s.visitors = visitors
			changed = append(changed, RecordVisitors)
		}
	}
	s.mu.Unlock()

	for _, r := range changed {
		slog.Info("Reloaded record changed outside the server", "record", r)
		s.notify(ctx, r)
	}
	return nil
}

// reloadRecord decodes the record under key unless it is missing or holds the
// bytes s last saved there. Callers hold s.mu.
func reloadRecord[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var v T
	data, err := s.kv.Load(ctx, key)
	if err != nil {
		return v, false
	}
	if last, ok := s.saved[key]; ok && bytes.Equal(data, last) {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("Ignoring unparseable record on reload", "key", key, "error", err)
		return v, false
	}
	return v, true
}
