package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/chrisdamba/foodadmin/internal/analytics"
	"github.com/chrisdamba/foodadmin/internal/events"
	"github.com/chrisdamba/foodadmin/internal/export"
	"github.com/labstack/echo/v4"
)

func (h *Handler) analyticsQuery(c echo.Context) (analytics.Query, error) {
	raw := c.QueryParam("window")
	if raw == "" {
		raw = h.DefaultWindow
	}
	window, err := analytics.ParseTimeWindow(raw)
	if err != nil {
		return analytics.Query{}, err
	}
	limit, err := intParam(c, "limit", h.DefaultLimit)
	if err != nil {
		return analytics.Query{}, err
	}
	if limit < 0 {
		limit = 0
	}
	return analytics.Query{Window: window, Limit: limit}, nil
}

func (h *Handler) Popularity(c echo.Context) error {
	q, err := h.analyticsQuery(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	report, err := h.Analytics.PopularityReport(ctx, q)
	if err != nil {
		return err
	}
	h.emit(ctx, h.ReportTopic, events.TypeReportGenerated, report.ID, map[string]interface{}{
		"reportId":      report.ID,
		"window":        report.Window,
		"rows":          len(report.Rows),
		"totalQuantity": report.TotalQuantity,
		"totalRevenue":  report.TotalRevenue,
	})
	return ok(c, report)
}

func (h *Handler) OrderDashboard(c echo.Context) error {
	q, err := h.analyticsQuery(c)
	if err != nil {
		return err
	}
	dashboard, err := h.Analytics.OrderDashboard(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return ok(c, dashboard)
}

// Export streams the popularity report as a download, or writes it through the
// configured exporter when save=true.
func (h *Handler) Export(c echo.Context) error {
	format, err := export.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return invalid(err)
	}
	q, err := h.analyticsQuery(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	report, err := h.Analytics.PopularityReport(ctx, q)
	if err != nil {
		return err
	}

	if save, _ := strconv.ParseBool(c.QueryParam("save")); save {
		if h.Exporter == nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "report export is not configured")
		}
		target, err := h.Exporter.Export(ctx, report, format)
		if err != nil {
			return err
		}
		return created(c, map[string]string{"reportId": report.ID, "target": target})
	}

	filename := fmt.Sprintf("popularity-%s%s", report.Window, format.Extension())
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, format.ContentType())
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	res.WriteHeader(http.StatusOK)
	return export.Encode(res, format, report)
}
