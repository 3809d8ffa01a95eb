package websocket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/nfrund/folio/internal/hub"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

// Handler upgrades requests to websocket connections and streams hub
// broadcasts to them. Inbound messages are discarded.
type Handler struct {
	hub            *hub.Hub
	originPatterns []string
}

// NewHandler creates a Handler serving h. originPatterns lists extra hosts
// allowed to connect besides the request's own.
func NewHandler(h *hub.Hub, originPatterns ...string) *Handler {
	return &Handler{hub: h, originPatterns: originPatterns}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		slog.Error("Failed to upgrade connection to WebSocket", "error", err)
		return
	}

	sub := hub.NewSubscriber(sendBuffer)
	h.hub.Register(sub)
	defer h.hub.Unregister(sub)

	// CloseRead drains and discards client frames; ctx ends when the peer goes away.
	ctx := conn.CloseRead(r.Context())
	status, reason := h.writeLoop(ctx, conn, sub)
	conn.Close(status, reason)
}

func (h *Handler) writeLoop(ctx context.Context, conn *websocket.Conn, sub *hub.Subscriber) (websocket.StatusCode, string) {
	for {
		select {
		case <-ctx.Done():
			return websocket.StatusNormalClosure, ""

		case msg, ok := <-sub.Send:
			if !ok {
				return websocket.StatusGoingAway, "server closed subscription"
			}
			wctx, cancel := context.WithTimeout(ctx, writeWait)
			err := conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					slog.Warn("WebSocket write error", "subscriber_id", sub.ID, "error", err)
				}
				return websocket.StatusInternalError, "write failed"
			}
		}
	}
}
