// Package app wires the application's services together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/contact"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/email"
	"github.com/nfrund/folio/internal/hub"
	"github.com/nfrund/folio/internal/kvstore"
	"github.com/nfrund/folio/internal/portfolio"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/server"
	"github.com/samber/do/v2"
)

// NewInjector registers every service provider. Services are built lazily on
// first use, so the CLI only pays for the store.
func NewInjector(ctx context.Context, cfg config.Provider) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue[domain.Clock](i, domain.RealClock{})
	do.ProvideValue(i, config.Location(cfg))

	do.Provide(i, func(i do.Injector) (kvstore.Store, error) {
		return kvstore.New(ctx, do.MustInvoke[config.Provider](i))
	})
	do.Provide(i, func(i do.Injector) (*pubsub.Bus, error) {
		return pubsub.NewBus(0), nil
	})
	do.Provide(i, func(i do.Injector) (*portfolio.Store, error) {
		kv, err := do.Invoke[kvstore.Store](i)
		if err != nil {
			return nil, err
		}
		bus := do.MustInvoke[*pubsub.Bus](i)
		cfg := do.MustInvoke[config.Provider](i)
		return portfolio.Open(ctx, kv,
			portfolio.WithClock(do.MustInvoke[domain.Clock](i)),
			portfolio.WithPublisher(bus),
			portfolio.WithKeys(portfolio.KeysFor(cfg.GetStoreNamespace())),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*contact.Service, error) {
		sender, err := email.NewEmailService(do.MustInvoke[config.Provider](i))
		if err != nil {
			return nil, err
		}
		store, err := do.Invoke[*portfolio.Store](i)
		if err != nil {
			return nil, err
		}
		return contact.NewService(store, sender,
			contact.WithClock(do.MustInvoke[domain.Clock](i)),
			contact.WithLocation(do.MustInvoke[*time.Location](i)),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*hub.Hub, error) {
		return hub.NewHub(), nil
	})
	do.Provide(i, func(i do.Injector) (*server.Server, error) {
		store, err := do.Invoke[*portfolio.Store](i)
		if err != nil {
			return nil, err
		}
		svc, err := do.Invoke[*contact.Service](i)
		if err != nil {
			return nil, err
		}
		return server.New(server.Dependencies{
			Config:     do.MustInvoke[config.Provider](i),
			Store:      store,
			Contact:    svc,
			Hub:        do.MustInvoke[*hub.Hub](i),
			Subscriber: do.MustInvoke[*pubsub.Bus](i),
			Clock:      do.MustInvoke[domain.Clock](i),
			Location:   do.MustInvoke[*time.Location](i),
		})
	})

	return i
}

// App is the running web application.
type App struct {
	injector do.Injector
	Server   *server.Server
}

// New builds the web application for cfg.
func New(ctx context.Context, cfg config.Provider) (*App, error) {
	i := NewInjector(ctx, cfg)
	s, err := do.Invoke[*server.Server](i)
	if err != nil {
		return nil, fmt.Errorf("build server: %w", err)
	}
	return &App{injector: i, Server: s}, nil
}

// Run serves until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	if err := a.watchStore(ctx); err != nil {
		return err
	}
	return a.Server.Start(ctx)
}

// watchStore reloads the portfolio whenever a backend that supports it
// reports a write. Reload ignores records matching the store's own last write.
func (a *App) watchStore(ctx context.Context) error {
	kv, err := do.Invoke[kvstore.Store](a.injector)
	if err != nil {
		return err
	}
	w, ok := kv.(kvstore.Watcher)
	if !ok {
		return nil
	}
	store, err := do.Invoke[*portfolio.Store](a.injector)
	if err != nil {
		return err
	}
	err = w.Watch(ctx, func(key string) {
		if err := store.Reload(ctx); err != nil {
			slog.Warn("Failed to reload portfolio", "key", key, "error", err)
		}
	})
	if errors.Is(err, kvstore.ErrWatchUnsupported) {
		return nil
	}
	return err
}

// Close releases the bus and the key-value store.
func (a *App) Close(ctx context.Context) error {
	return Close(ctx, a.injector)
}

// Close releases whatever the injector has built that holds resources.
func Close(ctx context.Context, i do.Injector) error {
	var errs []error
	if bus, err := do.Invoke[*pubsub.Bus](i); err == nil {
		errs = append(errs, bus.Close())
	}
	if kv, err := do.Invoke[kvstore.Store](i); err == nil {
		errs = append(errs, kv.Close(ctx))
	}
	return errors.Join(errs...)
}
