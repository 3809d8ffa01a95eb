package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/admin"
)

// PanelContextKey is where RequireAdmin leaves the loaded admin.Panel.
const PanelContextKey = "panel"

// RequireAdmin rejects requests whose session is not in admin mode. htmx
// requests get 403 so the page can react; plain requests are sent home.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			panel := admin.LoadPanel(c)
			if !panel.Admin {
				FromContext(c.Request().Context()).Info("Rejected admin request", "path", c.Path())
				if IsHTMX(c) {
					return echo.NewHTTPError(http.StatusForbidden, "admin session required")
				}
				return c.Redirect(http.StatusSeeOther, "/")
			}
			c.Set(PanelContextKey, panel)
			return next(c)
		}
	}
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
