package server

import (
	"errors"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/folio/internal/admin"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/contact"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/hub"
	appmiddleware "github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/portfolio"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/internal/websocket"
)

// Dependencies holds everything the HTTP server needs. Echo, Renderer, Clock
// and Location are optional.
type Dependencies struct {
	Config     config.Provider
	Store      *portfolio.Store
	Contact    *contact.Service
	Hub        *hub.Hub
	Subscriber pubsub.Subscriber
	Renderer   *rendering.UniversalRenderer
	Echo       *echo.Echo
	Clock      domain.Clock
	Location   *time.Location
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	hub      *hub.Hub
	bridge   *websocket.Bridge
	renderer *rendering.UniversalRenderer

	portfolioHandler *handlers.PortfolioHandler
	adminHandler     *handlers.AdminHandler
	contactHandler   *handlers.ContactHandler
	liveHandler      *websocket.Handler
}

// New creates a Server with middleware configured and routes registered.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Store == nil {
		return nil, errors.New("server: portfolio store is required")
	}
	if deps.Contact == nil {
		return nil, errors.New("server: contact service is required")
	}
	if deps.Hub == nil {
		return nil, errors.New("server: hub is required")
	}
	if deps.Subscriber == nil {
		return nil, errors.New("server: subscriber is required")
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	renderer := deps.Renderer
	if renderer == nil {
		renderer = rendering.NewUniversalRenderer()
	}
	clock := deps.Clock
	if clock == nil {
		clock = domain.RealClock{}
	}

	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	portfolioHandler := handlers.NewPortfolioHandler(deps.Store, clock, deps.Location)
	s := &Server{
		E:                e,
		Cfg:              deps.Config,
		hub:              deps.Hub,
		renderer:         renderer,
		portfolioHandler: portfolioHandler,
		adminHandler:     handlers.NewAdminHandler(admin.NewGate(deps.Config.GetAdminPasscode()), portfolioHandler),
		contactHandler:   handlers.NewContactHandler(deps.Contact, deps.Store),
		liveHandler:      websocket.NewHandler(deps.Hub),
	}
	s.bridge = websocket.NewBridge(deps.Subscriber, deps.Hub, s.liveFragment)

	s.RegisterRoutes()
	return s, nil
}
