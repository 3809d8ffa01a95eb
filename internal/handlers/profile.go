package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/domain"
)

// UpdateProfile overwrites whichever profile fields the form carries
// (POST /admin/profile). Values are stored as given.
func (h *PortfolioHandler) UpdateProfile(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	updated := 0
	for _, f := range domain.ProfileFields {
		values, ok := form[string(f)]
		if !ok || len(values) == 0 {
			continue
		}
		if err := h.store.UpdateProfileField(ctx, f, values[0]); err != nil {
			return httpError(err)
		}
		updated++
	}
	if updated == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no profile fields given")
	}
	return h.renderPortfolio(c, panelFrom(c))
}
