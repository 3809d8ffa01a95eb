package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/contact"
	"github.com/nfrund/folio/internal/hub"
	"github.com/nfrund/folio/internal/kvstore"
	"github.com/nfrund/folio/internal/portfolio"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	original := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(original) })
	return &logBuffer
}

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	logBuffer := captureLogs(t)
	e := echo.New()
	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"")
	assert.Contains(t, logOutput, "stack_trace=")
	assert.Contains(t, logOutput, "runtime/debug/stack.go")
	assert.Contains(t, logOutput, "internal/server/server_test.go")
	assert.NotContains(t, rec.Body.String(), "deliberate", "internal details must not leak to the client")
}

func TestHTTPErrorHandler_ClientErrorsAreNotLogged(t *testing.T) {
	logBuffer := captureLogs(t)
	e := echo.New()
	setupErrorHandling(e)

	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "no such block")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no such block")
	assert.Empty(t, logBuffer.String())
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(Dependencies{})
	assert.Error(t, err)
}

type testApp struct {
	server *Server
	http   *httptest.Server
	client *http.Client
	store  *portfolio.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	bus := pubsub.NewBus(0)
	store := portfolio.Open(ctx, kvstore.NewMemoryStore(), portfolio.WithPublisher(bus))
	cfg := &config.Config{
		AppAddr:       ":0",
		SessionSecret: "0123456789abcdef0123456789abcdef",
		AdminPasscode: "654321",
	}

	s, err := New(Dependencies{
		Config:     cfg,
		Store:      store,
		Contact:    contact.NewService(store, nil),
		Hub:        hub.NewHub(),
		Subscriber: bus,
		Location:   time.UTC,
	})
	require.NoError(t, err)
	require.NoError(t, s.startLive(ctx))

	srv := httptest.NewServer(s.E)
	t.Cleanup(func() {
		cancel()
		srv.Close()
		_ = bus.Close()
	})

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testApp{server: s, http: srv, client: &http.Client{Jar: jar}, store: store}
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, a.http.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	resp, err := a.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestServer_HomeAndHealth(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.client.Get(app.http.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(echo.HeaderXRequestID))

	resp, err = app.client.Get(app.http.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_AdminRoutesNeedLogin(t *testing.T) {
	app := newTestApp(t)

	resp := app.postForm(t, "/admin/blocks", url.Values{"kind": {"text"}})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Len(t, app.store.Blocks(), 5)

	resp = app.postForm(t, "/admin/login", url.Values{"code": {"654321"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("HX-Refresh"))

	resp = app.postForm(t, "/admin/blocks", url.Values{"kind": {"text"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, app.store.Blocks(), 6)
}

func TestServer_LiveSignalAfterEdit(t *testing.T) {
	app := newTestApp(t)

	wsURL := "ws" + strings.TrimPrefix(app.http.URL, "http") + "/ws/live"
	conn, _, err := gorillaws.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return app.server.hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	_, err = app.store.RecordVisitor(context.Background(), "alguem")
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), `id="live-signal"`)
	assert.Contains(t, string(data), `hx-swap-oob="true"`)
	assert.Contains(t, string(data), `hx-get="/portfolio"`)
}
