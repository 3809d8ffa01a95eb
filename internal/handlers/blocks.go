package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/portfolio"
)

// blockFields are the form keys UpdateBlockFields looks for.
var blockFields = []domain.BlockField{
	domain.BlockTitle,
	domain.BlockSubtitle,
	domain.BlockContent,
	domain.BlockURL,
	domain.BlockImageURL,
}

// bindValid binds the request into req and validates it.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// AddBlock appends a block of the requested kind (POST /admin/blocks).
func (h *PortfolioHandler) AddBlock(c echo.Context) error {
	var req AddBlockRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	kind, err := domain.ParseBlockKind(req.Kind)
	if err != nil {
		return httpError(err)
	}
	if _, err := h.store.AddBlock(c.Request().Context(), kind); err != nil {
		return httpError(err)
	}
	return h.renderPortfolio(c, panelFrom(c))
}

// MoveBlock swaps a block with its neighbour (POST /admin/blocks/:id/move).
func (h *PortfolioHandler) MoveBlock(c echo.Context) error {
	var req MoveBlockRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	dir, err := portfolio.ParseDirection(req.Direction)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	moved, err := h.store.MoveBlockByID(c.Request().Context(), req.ID, dir)
	if err != nil {
		return httpError(err)
	}
	middleware.FromContext(c.Request().Context()).Debug("Move block", "id", req.ID, "direction", req.Direction, "moved", moved)
	return h.renderPortfolio(c, panelFrom(c))
}

// ResizeBlock grows or shrinks a block (POST /admin/blocks/:id/resize).
func (h *PortfolioHandler) ResizeBlock(c echo.Context) error {
	var req ResizeBlockRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	axis, err := portfolio.ParseAxis(req.Axis)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	action, err := portfolio.ParseResize(req.Action)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, err := h.store.ResizeBlock(c.Request().Context(), req.ID, axis, action); err != nil {
		return httpError(err)
	}
	return h.renderPortfolio(c, panelFrom(c))
}

// UpdateBlockFields overwrites whichever free-text fields the form carries in
// a single write (POST /admin/blocks/:id/fields).
func (h *PortfolioHandler) UpdateBlockFields(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.Block(id); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "block not found")
	}
	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	fields := make(map[domain.BlockField]string, len(blockFields))
	for _, f := range blockFields {
		if values, ok := form[string(f)]; ok && len(values) > 0 {
			fields[f] = values[0]
		}
	}
	if len(fields) > 0 {
		if _, err := h.store.UpdateBlockFields(c.Request().Context(), id, fields); err != nil {
			return httpError(err)
		}
	}
	return h.renderPortfolio(c, panelFrom(c))
}

// DeleteBlock removes a block once the request confirms
// (DELETE /admin/blocks/:id?confirm=yes).
func (h *PortfolioHandler) DeleteBlock(c echo.Context) error {
	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	id := c.Param("id")
	deleted, err := h.store.DeleteBlock(c.Request().Context(), id, req.Answer())
	if err != nil {
		return httpError(err)
	}
	middleware.FromContext(c.Request().Context()).Info("Delete block", "id", id, "deleted", deleted)
	return h.renderPortfolio(c, panelFrom(c))
}
