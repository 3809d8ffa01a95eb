package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/folio/internal/portfolio"
	"github.com/nfrund/folio/internal/view"
)

const shutdownTimeout = 10 * time.Second

// Start runs the live hub and the HTTP server until ctx is canceled, then
// shuts the server down gracefully.
func (s *Server) Start(ctx context.Context) error {
	liveCtx, stopLive := context.WithCancel(ctx)
	defer stopLive()
	if err := s.startLive(liveCtx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "address", s.Cfg.GetAppAddr())
		if err := s.E.Start(s.Cfg.GetAppAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("shutting down the server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.E.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// startLive runs the hub and forwards portfolio changes to it until ctx ends.
func (s *Server) startLive(ctx context.Context) error {
	go s.hub.Run(ctx)
	return s.bridge.Start(ctx)
}

// liveFragment renders the signal pushed to open pages after a change.
func (s *Server) liveFragment(ctx context.Context, ev portfolio.ChangeEvent) ([]byte, error) {
	slog.Debug("Broadcasting live refresh", "record", ev.Record, "subscribers", s.hub.Len())
	return s.renderer.RenderComponent(ctx, view.LiveRefresh())
}
