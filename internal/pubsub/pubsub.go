package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Message is one event on the in-process bus.
type Message struct {
	Topic    string
	Payload  []byte
	Metadata map[string]string
}

// Handler processes a delivered message. Returned errors are logged and the
// message is not redelivered.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber delivers messages for a topic to a Handler. Subscribe returns once
// the subscription is live; delivery stops when ctx ends or the subscriber is
// closed.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// PublishJSON encodes v as the payload of a message on topic.
func PublishJSON(ctx context.Context, p Publisher, topic string, v any, metadata map[string]string) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", topic, err)
	}
	return p.Publish(ctx, Message{Topic: topic, Payload: payload, Metadata: metadata})
}
