package testutils

import (
	"context"
	"sync"
	"time"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/pubsub"
)

// StubClock returns a fixed time. Safe for concurrent use.
type StubClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewStubClock creates a StubClock set to the given time.
func NewStubClock(t time.Time) *StubClock {
	return &StubClock{now: t}
}

// FixedClock returns a StubClock set to 2025-03-14 15:09:26 UTC.
func FixedClock() *StubClock {
	return NewStubClock(time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC))
}

func (c *StubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *StubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// RecordingPublisher implements pubsub.Publisher and keeps every message.
type RecordingPublisher struct {
	mu       sync.Mutex
	messages []pubsub.Message
}

func (p *RecordingPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *RecordingPublisher) Close() error { return nil }

// Messages returns a copy of the published messages.
func (p *RecordingPublisher) Messages() []pubsub.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]pubsub.Message, len(p.messages))
	copy(out, p.messages)
	return out
}

// FlakyStore wraps a KeyValueStore and fails writes while FailSaves is set.
type FlakyStore struct {
	domain.KeyValueStore

	mu        sync.Mutex
	failSaves bool
	saves     int
}

// NewFlakyStore wraps inner.
func NewFlakyStore(inner domain.KeyValueStore) *FlakyStore {
	return &FlakyStore{KeyValueStore: inner}
}

// FailSaves toggles write failures.
func (s *FlakyStore) FailSaves(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSaves = fail
}

// Saves returns how many writes reached the inner store.
func (s *FlakyStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *FlakyStore) Save(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	fail := s.failSaves
	if !fail {
		s.saves++
	}
	s.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return s.KeyValueStore.Save(ctx, key, value)
}
