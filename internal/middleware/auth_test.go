package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func newAdminTestServer() *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.POST("/login", func(c echo.Context) error {
		return admin.SavePanel(c, admin.Panel{Admin: true})
	})
	e.GET("/secret", func(c echo.Context) error {
		panel, ok := c.Get(PanelContextKey).(admin.Panel)
		if !ok || !panel.Admin {
			return c.String(http.StatusInternalServerError, "panel missing")
		}
		return c.String(http.StatusOK, "welcome")
	}, RequireAdmin())
	return e
}

func TestRequireAdmin(t *testing.T) {
	e := newAdminTestServer()

	t.Run("visitor is redirected home", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("htmx visitor gets 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin session passes", func(t *testing.T) {
		loginRec := httptest.NewRecorder()
		e.ServeHTTP(loginRec, httptest.NewRequest(http.MethodPost, "/login", nil))
		cookies := loginRec.Result().Cookies()
		require.NotEmpty(t, cookies)

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "welcome", rec.Body.String())
	})
}
