package hub

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
)

// Subscriber is one connected page receiving live-update fragments.
type Subscriber struct {
	// ID identifies the subscriber in logs.
	ID string
	// Send is a buffered channel of outbound messages. The Hub closes it when
	// the subscriber is unregistered or falls behind.
	Send chan []byte
}

// NewSubscriber creates a subscriber with a fresh id and the given buffer.
func NewSubscriber(buffer int) *Subscriber {
	return &Subscriber{ID: uuid.NewString(), Send: make(chan []byte, buffer)}
}

// Hub fans messages out to every registered subscriber.
type Hub struct {
	subscribers map[*Subscriber]bool
	count       atomic.Int64

	broadcast  chan []byte
	register   chan *Subscriber
	unregister chan *Subscriber
	done       chan struct{}
}

// NewHub creates a Hub. Call Run to start it.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		broadcast:   make(chan []byte),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		done:        make(chan struct{}),
	}
}

// Register adds s. It is a no-op once the hub has stopped.
func (h *Hub) Register(s *Subscriber) {
	select {
	case h.register <- s:
	case <-h.done:
	}
}

// Unregister removes s and closes its Send channel.
func (h *Hub) Unregister(s *Subscriber) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Broadcast queues msg for every subscriber. It returns early if ctx ends or
// the hub has stopped.
func (h *Hub) Broadcast(ctx context.Context, msg []byte) {
	select {
	case h.broadcast <- msg:
	case <-ctx.Done():
	case <-h.done:
	}
}

// Len reports the number of registered subscribers.
func (h *Hub) Len() int {
	return int(h.count.Load())
}

// Run processes registrations and broadcasts until ctx is cancelled, then
// closes every remaining subscriber.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for s := range h.subscribers {
			h.drop(s)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case s := <-h.register:
			h.subscribers[s] = true
			h.count.Store(int64(len(h.subscribers)))
			slog.Info("Live subscriber registered", "subscriber_id", s.ID, "total_subscribers", len(h.subscribers))

		case s := <-h.unregister:
			if h.subscribers[s] {
				h.drop(s)
				slog.Info("Live subscriber unregistered", "subscriber_id", s.ID, "total_subscribers", len(h.subscribers))
			}

		case msg := <-h.broadcast:
			slog.Debug("Broadcasting live update", "recipient_count", len(h.subscribers))
			for s := range h.subscribers {
				select {
				case s.Send <- msg:
				default:
					h.drop(s)
					slog.Warn("Dropping slow live subscriber", "subscriber_id", s.ID, "total_subscribers", len(h.subscribers))
				}
			}
		}
	}
}

func (h *Hub) drop(s *Subscriber) {
	delete(h.subscribers, s)
	close(s.Send)
	h.count.Store(int64(len(h.subscribers)))
}
