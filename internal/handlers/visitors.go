package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/admin"
	"github.com/nfrund/folio/internal/view"
)

// DeleteVisitor removes one entry from the log (DELETE /admin/visitors/:id).
func (h *PortfolioHandler) DeleteVisitor(c echo.Context) error {
	if _, err := h.store.DeleteVisitor(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return h.renderVisitors(c)
}

// ClearVisitors empties the log once the request confirms
// (DELETE /admin/visitors?confirm=yes).
func (h *PortfolioHandler) ClearVisitors(c echo.Context) error {
	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if _, err := h.store.ClearVisitors(c.Request().Context(), req.Answer()); err != nil {
		return httpError(err)
	}
	return h.renderVisitors(c)
}

func (h *PortfolioHandler) renderVisitors(c echo.Context) error {
	return c.Render(http.StatusOK, "", view.ModalBody(admin.ModalVisitors, h.pageData(c, panelFrom(c))))
}
