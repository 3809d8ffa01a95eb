package portfolio

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/folio/internal/pubsub"
)

// TopicChanged is published after every persisted mutation.
const TopicChanged = "portfolio.changed"

// Record names which part of the document changed.
type Record string

const (
	RecordBlocks   Record = "items"
	RecordProfile  Record = "profile"
	RecordVisitors Record = "visitors"
)

// ChangeEvent is the payload of a TopicChanged message.
type ChangeEvent struct {
	Record Record    `json:"record"`
	At     time.Time `json:"at"`
}

// notify announces a change. Delivery failures are logged; the change itself
// is already durable.
func (s *Store) notify(ctx context.Context, record Record) {
	if s.publisher == nil {
		return
	}
	event := ChangeEvent{Record: record, At: s.clock.Now().UTC()}
	meta := map[string]string{"record": string(record)}
	if err := pubsub.PublishJSON(ctx, s.publisher, TopicChanged, event, meta); err != nil {
		slog.Warn("Failed to publish change event", "record", record, "error", err)
	}
}
