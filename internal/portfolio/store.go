package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/pubsub"
)

// Keys names the three entries the store persists into.
type Keys struct {
	Blocks   string
	Profile  string
	Visitors string
}

// KeysFor derives the fixed record keys for a namespace, e.g. "robinho_items".
func KeysFor(namespace string) Keys {
	return Keys{
		Blocks:   namespace + "_items",
		Profile:  namespace + "_profile",
		Visitors: namespace + "_visitors",
	}
}

// Store owns the portfolio document: the block list, the profile and the
// visitor log. Every mutation is written to the key-value collaborator before
// the in-memory copy is replaced, so a failed write leaves the store unchanged.
type Store struct {
	mu        sync.Mutex
	kv        domain.KeyValueStore
	keys      Keys
	clock     domain.Clock
	publisher pubsub.Publisher

	blocks   []domain.ContentBlock
	profile  domain.Profile
	visitors []domain.Visitor

	// saved holds the last bytes this store wrote per key, so Reload can tell
	// its own writes from another process's.
	saved map[string][]byte
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock used for ids and timestamps.
func WithClock(c domain.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithPublisher makes the store announce every persisted change.
func WithPublisher(p pubsub.Publisher) Option {
	return func(s *Store) { s.publisher = p }
}

// WithKeys overrides the record keys.
func WithKeys(k Keys) Option {
	return func(s *Store) { s.keys = k }
}

// Open reads the three records from kv, falling back to the built-in defaults
// for anything missing or unreadable, and runs the legacy-title migration.
func Open(ctx context.Context, kv domain.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		keys:  KeysFor("robinho"),
		clock: domain.RealClock{},
		saved: make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.blocks = loadRecord(ctx, kv, s.keys.Blocks, domain.DefaultBlocks)
	s.profile = loadRecord(ctx, kv, s.keys.Profile, domain.DefaultProfile)
	s.visitors = loadRecord(ctx, kv, s.keys.Visitors, func() []domain.Visitor { return []domain.Visitor{} })
	if s.blocks == nil {
		s.blocks = []domain.ContentBlock{}
	}
	if s.visitors == nil {
		s.visitors = []domain.Visitor{}
	}

	if kept, removed := dropLegacyBlocks(s.blocks); removed > 0 {
		slog.Info("Removed legacy placeholder blocks", "count", removed)
		if err := s.save(ctx, s.keys.Blocks, kept); err != nil {
			slog.Warn("Could not persist migrated block list", "error", err)
		}
		s.blocks = kept
	}
	return s
}

// loadRecord decodes the value under key, or returns fallback() when the key
// is absent, unreadable or holds something that does not parse.
func loadRecord[T any](ctx context.Context, kv domain.KeyValueStore, key string, fallback func() T) T {
	data, err := kv.Load(ctx, key)
	if err != nil {
		slog.Debug("Using built-in default record", "key", key, "reason", err)
		return fallback()
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("Stored record is unparseable, using built-in default", "key", key, "error", err)
		return fallback()
	}
	return v
}

// Blocks returns a copy of the block list in display order.
func (s *Store) Blocks() []domain.ContentBlock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneBlocks(s.blocks)
}

// Block returns the block with the given id.
func (s *Store) Block(id string) (domain.ContentBlock, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOfBlock(s.blocks, id)
	if i < 0 {
		return domain.ContentBlock{}, false
	}
	return s.blocks[i], true
}

// Profile returns the profile record.
func (s *Store) Profile() domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Visitors returns a copy of the visitor log, newest first.
func (s *Store) Visitors() []domain.Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Visitor{}, s.visitors...)
}

// Snapshot returns the whole document.
func (s *Store) Snapshot() domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Document{
		Profile:  s.profile,
		Blocks:   cloneBlocks(s.blocks),
		Visitors: append([]domain.Visitor{}, s.visitors...),
	}
}

// AddBlock appends a new 1x1 block of the given kind with kind-specific
// placeholder content.
func (s *Store) AddBlock(ctx context.Context, kind domain.BlockKind) (domain.ContentBlock, error) {
	if !kind.Valid() {
		return domain.ContentBlock{}, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}

	s.mu.Lock()
	id := nextID(s.clock.Now(), func(id string) bool { return indexOfBlock(s.blocks, id) >= 0 })
	b := newBlock(kind, id)
	next := append(cloneBlocks(s.blocks), b)
	err := s.commitBlocks(ctx, next)
	s.mu.Unlock()

	if err != nil {
		return domain.ContentBlock{}, err
	}
	slog.Info("Block added", "id", b.ID, "kind", b.Kind)
	s.notify(ctx, RecordBlocks)
	return b, nil
}

// newBlock builds a block with the placeholder content the editor shows for
// a freshly added tile.
func newBlock(kind domain.BlockKind, id string) domain.ContentBlock {
	b := domain.ContentBlock{
		ID:         id,
		Kind:       kind,
		ColumnSpan: domain.MinSpan,
		RowSpan:    domain.MinSpan,
	}
	switch kind {
	case domain.KindImage:
		b.ImageURL = "https://picsum.photos/800/800?random=" + id
	case domain.KindText:
		b.Title = "Novo Texto"
		b.Content = "Escreva algo aqui..."
	case domain.KindLink:
		b.Title = "Novo Link"
		b.URL = "https://"
	default:
		b.Title = "Novo Link"
	}
	return b
}

// MoveBlock swaps the block at index with its neighbour. It reports false,
// without error, when either position falls outside the list.
func (s *Store) MoveBlock(ctx context.Context, index int, dir Direction) (bool, error) {
	s.mu.Lock()
	moved, err := s.moveLocked(ctx, index, dir)
	s.mu.Unlock()
	return s.afterBlocksChange(ctx, moved, err)
}

// MoveBlockByID is MoveBlock for the block with the given id. An unknown id
// is a no-op.
func (s *Store) MoveBlockByID(ctx context.Context, id string, dir Direction) (bool, error) {
	s.mu.Lock()
	moved, err := s.moveLocked(ctx, indexOfBlock(s.blocks, id), dir)
	s.mu.Unlock()
	return s.afterBlocksChange(ctx, moved, err)
}

func (s *Store) moveLocked(ctx context.Context, index int, dir Direction) (bool, error) {
	target := index - 1
	if dir == Later {
		target = index + 1
	}
	if index < 0 || index >= len(s.blocks) || target < 0 || target >= len(s.blocks) {
		return false, nil
	}
	next := cloneBlocks(s.blocks)
	next[index], next[target] = next[target], next[index]
	if err := s.commitBlocks(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) afterBlocksChange(ctx context.Context, changed bool, err error) (bool, error) {
	if err != nil || !changed {
		return false, err
	}
	s.notify(ctx, RecordBlocks)
	return true, nil
}

// ResizeBlock grows or shrinks one span of a block by one grid unit, clamped
// to [1,4] columns and [1,2] rows. It reports false at a bound or for an
// unknown id.
func (s *Store) ResizeBlock(ctx context.Context, id string, axis Axis, action Resize) (bool, error) {
	step := 1
	if action == Shrink {
		step = -1
	}

	s.mu.Lock()
	i := indexOfBlock(s.blocks, id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	next := cloneBlocks(s.blocks)
	b := &next[i]
	before := *b
	if axis == Width {
		b.ColumnSpan += step
	} else {
		b.RowSpan += step
	}
	b.Normalize()
	if *b == before {
		s.mu.Unlock()
		return false, nil
	}
	err := s.commitBlocks(ctx, next)
	s.mu.Unlock()

	if err != nil {
		return false, err
	}
	s.notify(ctx, RecordBlocks)
	return true, nil
}

// UpdateBlockField overwrites one free-text field of a block. It reports
// false for an unknown id.
func (s *Store) UpdateBlockField(ctx context.Context, id string, field domain.BlockField, value string) (bool, error) {
	return s.UpdateBlockFields(ctx, id, map[domain.BlockField]string{field: value})
}

// UpdateBlockFields overwrites several free-text fields of a block in one
// write. Either every field is stored or none is. It reports false for an
// unknown id.
func (s *Store) UpdateBlockFields(ctx context.Context, id string, fields map[domain.BlockField]string) (bool, error) {
	s.mu.Lock()
	i := indexOfBlock(s.blocks, id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	next := cloneBlocks(s.blocks)
	for field, value := range fields {
		if err := next[i].Set(field, value); err != nil {
			s.mu.Unlock()
			return false, err
		}
	}
	err := s.commitBlocks(ctx, next)
	s.mu.Unlock()

	if err != nil {
		return false, err
	}
	s.notify(ctx, RecordBlocks)
	return true, nil
}

// DeleteBlock removes the block with the given id once c confirms. It
// reports false when the block does not exist or the answer was no.
func (s *Store) DeleteBlock(ctx context.Context, id string, c Confirmer) (bool, error) {
	if _, ok := s.Block(id); !ok {
		return false, nil
	}
	// The lock is not held while asking: a prompt may wait on a human.
	if !c.Confirm(ctx, PromptDeleteBlock) {
		return false, nil
	}

	s.mu.Lock()
	i := indexOfBlock(s.blocks, id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	next := make([]domain.ContentBlock, 0, len(s.blocks)-1)
	next = append(next, s.blocks[:i]...)
	next = append(next, s.blocks[i+1:]...)
	err := s.commitBlocks(ctx, next)
	s.mu.Unlock()

	if err != nil {
		return false, err
	}
	slog.Info("Block deleted", "id", id)
	s.notify(ctx, RecordBlocks)
	return true, nil
}

// UpdateProfileField overwrites one profile field. Values are not validated.
func (s *Store) UpdateProfileField(ctx context.Context, field domain.ProfileField, value string) error {
	s.mu.Lock()
	next := s.profile
	if err := next.Set(field, value); err != nil {
		s.mu.Unlock()
		return err
	}
	err := s.save(ctx, s.keys.Profile, next)
	if err == nil {
		s.profile = next
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(ctx, RecordProfile)
	return nil
}

// RecordVisitor prepends a visitor entry stamped with the current time.
func (s *Store) RecordVisitor(ctx context.Context, handle string) (domain.Visitor, error) {
	s.mu.Lock()
	now := s.clock.Now()
	v := domain.Visitor{
		ID:              nextID(now, func(id string) bool { return indexOfVisitor(s.visitors, id) >= 0 }),
		InstagramHandle: handle,
		SubmittedAt:     now.UTC().Format(time.RFC3339Nano),
	}
	next := make([]domain.Visitor, 0, len(s.visitors)+1)
	next = append(next, v)
	next = append(next, s.visitors...)
	err := s.commitVisitors(ctx, next)
	s.mu.Unlock()

	if err != nil {
		return domain.Visitor{}, err
	}
	s.notify(ctx, RecordVisitors)
	return v, nil
}

// DeleteVisitor removes one visitor entry. It reports false for an unknown id.
func (s *Store) DeleteVisitor(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	i := indexOfVisitor(s.visitors, id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	next := make([]domain.Visitor, 0, len(s.visitors)-1)
	next = append(next, s.visitors[:i]...)
	next = append(next, s.visitors[i+1:]...)
	err := s.commitVisitors(ctx, next)
	s.mu.Unlock()

	if err != nil {
		return false, err
	}
	s.notify(ctx, RecordVisitors)
	return true, nil
}

// ClearVisitors empties the visitor log once c confirms.
func (s *Store) ClearVisitors(ctx context.Context, c Confirmer) (bool, error) {
	if !c.Confirm(ctx, PromptClearVisitors) {
		return false, nil
	}

	s.mu.Lock()
	err := s.commitVisitors(ctx, []domain.Visitor{})
	s.mu.Unlock()

	if err != nil {
		return false, err
	}
	slog.Info("Visitor log cleared")
	s.notify(ctx, RecordVisitors)
	return true, nil
}

// commitBlocks persists next and, on success, makes it current. Callers hold s.mu.
func (s *Store) commitBlocks(ctx context.Context, next []domain.ContentBlock) error {
	if err := s.save(ctx, s.keys.Blocks, next); err != nil {
		return err
	}
	s.blocks = next
	return nil
}

// commitVisitors persists next and, on success, makes it current. Callers hold s.mu.
func (s *Store) commitVisitors(ctx context.Context, next []domain.Visitor) error {
	if err := s.save(ctx, s.keys.Visitors, next); err != nil {
		return err
	}
	s.visitors = next
	return nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Save(ctx, key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	s.saved[key] = data
	return nil
}

// nextID derives an id from the creation time in milliseconds, stepping
// forward until it is unused.
func nextID(now time.Time, taken func(string) bool) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if !taken(id) {
			return id
		}
		ms++
	}
}

func cloneBlocks(in []domain.ContentBlock) []domain.ContentBlock {
	return append([]domain.ContentBlock{}, in...)
}

func indexOfBlock(blocks []domain.ContentBlock, id string) int {
	for i := range blocks {
		if blocks[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfVisitor(visitors []domain.Visitor, id string) int {
	for i := range visitors {
		if visitors[i].ID == id {
			return i
		}
	}
	return -1
}
