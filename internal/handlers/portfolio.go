package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/admin"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/portfolio"
	"github.com/nfrund/folio/internal/view"
)

// PortfolioHandler serves the page and every admin edit of the document.
type PortfolioHandler struct {
	store    *portfolio.Store
	clock    domain.Clock
	location *time.Location
}

// NewPortfolioHandler creates a PortfolioHandler.
func NewPortfolioHandler(store *portfolio.Store, clock domain.Clock, location *time.Location) *PortfolioHandler {
	if location == nil {
		location = time.Local
	}
	return &PortfolioHandler{store: store, clock: clock, location: location}
}

// pageData assembles the view model for the current session.
func (h *PortfolioHandler) pageData(c echo.Context, panel admin.Panel) view.PageData {
	now := h.clock.Now()
	panel.Settle(now)
	doc := h.store.Snapshot()
	return view.PageData{
		Profile:  doc.Profile,
		Blocks:   doc.Blocks,
		Visitors: doc.Visitors,
		Panel:    panel,
		Now:      now,
		Location: h.location,
	}
}

// Home renders the full page (GET /).
func (h *PortfolioHandler) Home(c echo.Context) error {
	data := h.pageData(c, admin.LoadPanel(c))
	data.Flash = view.GetFlashData(c)
	page := view.Layout(data.Profile.Name, view.AdaptGomponentToTempl(view.Page(data)))
	return c.Render(http.StatusOK, "", page)
}

// Fragment renders only the portfolio section (GET /portfolio).
func (h *PortfolioHandler) Fragment(c echo.Context) error {
	return h.renderPortfolio(c, admin.LoadPanel(c))
}

func (h *PortfolioHandler) renderPortfolio(c echo.Context, panel admin.Panel) error {
	return c.Render(http.StatusOK, "", view.Portfolio(h.pageData(c, panel)))
}

// Health reports liveness (GET /health).
func (h *PortfolioHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// OpenModal opens a dialog and renders it (GET /modal/:name). Admin dialogs
// requested by a visitor render the passcode prompt instead.
func (h *PortfolioHandler) OpenModal(c echo.Context) error {
	m, err := admin.ParseModal(c.Param("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	panel := admin.LoadPanel(c)
	panel.Settle(h.clock.Now())
	opened := panel.Open(m)
	if err := admin.SavePanel(c, panel); err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "", view.ModalBody(opened, h.pageData(c, panel)))
}

// CurrentModal re-renders whatever dialog is open once lapsed timers are
// applied (GET /modal). The passcode error and the save confirmation poll it.
func (h *PortfolioHandler) CurrentModal(c echo.Context) error {
	panel := admin.LoadPanel(c)
	panel.Settle(h.clock.Now())
	if err := admin.SavePanel(c, panel); err != nil {
		return httpError(err)
	}
	node := view.CurrentModal(h.pageData(c, panel))
	if node == nil {
		return c.HTML(http.StatusOK, "")
	}
	return c.Render(http.StatusOK, "", node)
}

// CloseModal closes every dialog (GET /modal/close).
func (h *PortfolioHandler) CloseModal(c echo.Context) error {
	panel := admin.LoadPanel(c)
	for _, m := range []admin.Modal{admin.ModalSettings, admin.ModalContact, admin.ModalVisitors, admin.ModalPasscode} {
		panel.Close(m)
	}
	if err := admin.SavePanel(c, panel); err != nil {
		return httpError(err)
	}
	return c.HTML(http.StatusOK, "")
}

// Export returns the whole document as a JSON download (GET /admin/export).
func (h *PortfolioHandler) Export(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="portfolio.json"`)
	return c.JSONPretty(http.StatusOK, h.store.Snapshot(), "  ")
}

// panelFrom returns the panel RequireAdmin loaded, or the session's.
func panelFrom(c echo.Context) admin.Panel {
	if p, ok := c.Get(middleware.PanelContextKey).(admin.Panel); ok {
		return p
	}
	return admin.LoadPanel(c)
}
