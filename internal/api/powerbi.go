package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) PowerBIReports(c echo.Context) error {
	if h.PowerBI == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "power bi is not configured")
	}
	reports, err := h.PowerBI.Reports(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to fetch reports").SetInternal(err)
	}
	return ok(c, reports)
}

func (h *Handler) PowerBIEmbedToken(c echo.Context) error {
	if h.PowerBI == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "power bi is not configured")
	}
	token, err := h.PowerBI.EmbedToken(c.Request().Context(), c.Param("reportId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to generate embed token").SetInternal(err)
	}
	return ok(c, token)
}
