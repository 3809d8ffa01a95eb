package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/admin"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/view"
)

// AdminHandler enters and leaves the admin panel.
type AdminHandler struct {
	gate      *admin.Gate
	portfolio *PortfolioHandler
}

// NewAdminHandler creates an AdminHandler. Views are rendered through p.
func NewAdminHandler(gate *admin.Gate, p *PortfolioHandler) *AdminHandler {
	return &AdminHandler{gate: gate, portfolio: p}
}

// Login checks the passcode (POST /admin/login). On success the whole page
// reloads in admin mode with settings open; on failure the passcode dialog is
// re-rendered with its error raised.
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	panel := admin.LoadPanel(c)
	now := h.portfolio.clock.Now()
	ok := panel.Login(h.gate, req.Code, now)
	if err := admin.SavePanel(c, panel); err != nil {
		return httpError(err)
	}

	if !ok {
		return c.Render(http.StatusOK, "", view.ModalBody(admin.ModalPasscode, h.portfolio.pageData(c, panel)))
	}
	middleware.FromContext(c.Request().Context()).Info("Admin login succeeded")
	return reload(c)
}

// Logout leaves the admin panel (POST /admin/logout).
func (h *AdminHandler) Logout(c echo.Context) error {
	panel := admin.LoadPanel(c)
	panel.Exit()
	if err := admin.SavePanel(c, panel); err != nil {
		return httpError(err)
	}
	return reload(c)
}

// Publish shows the save confirmation (POST /admin/publish). Every edit is
// already stored; the dialog closes once the confirmation lapses.
func (h *AdminHandler) Publish(c echo.Context) error {
	panel := panelFrom(c)
	if err := panel.Publish(h.portfolio.clock.Now()); err != nil {
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	if err := admin.SavePanel(c, panel); err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "", view.ModalBody(admin.ModalSettings, h.portfolio.pageData(c, panel)))
}

// reload asks htmx for a full page refresh, or redirects plain requests home.
func reload(c echo.Context) error {
	if middleware.IsHTMX(c) {
		c.Response().Header().Set("HX-Refresh", "true")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
