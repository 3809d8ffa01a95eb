package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// topicKey carries Message.Topic through watermill metadata.
const topicKey = "topic"

// DefaultBuffer is the per-subscriber channel size of a Bus.
const DefaultBuffer = 64

// Bus is an in-process Publisher and Subscriber on top of a watermill
// GoChannel.
type Bus struct {
	channel *gochannel.GoChannel
}

// NewBus creates a Bus whose subscribers each buffer up to buffer messages.
// A buffer of zero or less selects DefaultBuffer.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Bus{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: int64(buffer)},
			slogAdapter{logger: slog.Default().With("component", "bus")},
		),
	}
}

// Publish implements Publisher.
func (b *Bus) Publish(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	wm := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wm.Metadata.Set(k, v)
	}
	wm.Metadata.Set(topicKey, msg.Topic)
	wm.SetContext(ctx)
	return b.channel.Publish(msg.Topic, wm)
}

// Subscribe implements Subscriber. Every message is acked after the handler
// runs, whatever it returns.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wm := range messages {
			if err := handler(ctx, fromWatermill(wm)); err != nil {
				slog.Error("Bus handler failed", "topic", topic, "msg_id", wm.UUID, "error", err)
			}
			wm.Ack()
		}
		slog.Debug("Bus subscription ended", "topic", topic)
	}()
	return nil
}

// Close implements Publisher and Subscriber.
func (b *Bus) Close() error {
	return b.channel.Close()
}

func fromWatermill(wm *message.Message) Message {
	msg := Message{
		Topic:    wm.Metadata.Get(topicKey),
		Payload:  wm.Payload,
		Metadata: make(map[string]string, len(wm.Metadata)),
	}
	for k, v := range wm.Metadata {
		if k != topicKey {
			msg.Metadata[k] = v
		}
	}
	return msg
}

// slogAdapter routes watermill's internal logging through slog.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.logger.Error(msg, append(attrs(fields), "error", err)...)
}

func (a slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Info(msg, attrs(fields)...)
}

func (a slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, attrs(fields)...)
}

// Trace is folded into debug; slog has no lower level by default.
func (a slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, attrs(fields)...)
}

func (a slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return slogAdapter{logger: a.logger.With(attrs(fields)...)}
}

func attrs(fields watermill.LogFields) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}
