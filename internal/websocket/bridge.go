package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nfrund/folio/internal/hub"
	"github.com/nfrund/folio/internal/portfolio"
	"github.com/nfrund/folio/internal/pubsub"
)

// FragmentFunc renders the message pushed to pages for a change.
type FragmentFunc func(ctx context.Context, ev portfolio.ChangeEvent) ([]byte, error)

// Bridge forwards portfolio change events from the bus to the hub.
type Bridge struct {
	sub      pubsub.Subscriber
	hub      *hub.Hub
	fragment FragmentFunc
}

// NewBridge creates a Bridge.
func NewBridge(sub pubsub.Subscriber, h *hub.Hub, fragment FragmentFunc) *Bridge {
	return &Bridge{sub: sub, hub: h, fragment: fragment}
}

// Start subscribes to portfolio changes. Delivery stops when ctx ends.
func (b *Bridge) Start(ctx context.Context) error {
	if err := b.sub.Subscribe(ctx, portfolio.TopicChanged, b.handle); err != nil {
		return fmt.Errorf("subscribe %s: %w", portfolio.TopicChanged, err)
	}
	return nil
}

func (b *Bridge) handle(ctx context.Context, msg pubsub.Message) error {
	var ev portfolio.ChangeEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return fmt.Errorf("decode change event: %w", err)
	}
	frag, err := b.fragment(ctx, ev)
	if err != nil {
		return fmt.Errorf("render live fragment: %w", err)
	}
	b.hub.Broadcast(ctx, frag)
	return nil
}
