package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agricrm/pkg/metrics/service"
)

type AnalyticsCtrl struct{ svc service.DashboardService }

func New(svc service.DashboardService) *AnalyticsCtrl { return &AnalyticsCtrl{svc} }

// window reads ?timeRange=7d|30d|90d|6m|1y|all, overridable by explicit
// ?start=YYYY-MM-DD&end=YYYY-MM-DD bounds.
func window(c echo.Context) service.Window {
	w := service.ResolveWindow(c.QueryParam("timeRange"), time.Now())
	if v := c.QueryParam("start"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			w.Start = t
		}
	}
	if v := c.QueryParam("end"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			w.End = t
		}
	}
	return w
}

func (h *AnalyticsCtrl) Overview(c echo.Context) error {
	out, err := h.svc.Overview(window(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) Territories(c echo.Context) error {
	out, err := h.svc.TerritoryPerformance(window(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) Categories(c echo.Context) error {
	out, err := h.svc.CategoryPerformance(window(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) Sources(c echo.Context) error {
	out, err := h.svc.SourcePerformance(window(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) Sales(c echo.Context) error {
	out, err := h.svc.SalesSeries(window(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) Funnel(c echo.Context) error {
	out, err := h.svc.Funnel()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) RecentActivity(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.svc.RecentActivity(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) FarmerStats(c echo.Context) error {
	out, err := h.svc.FarmerStats(time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) ProductStats(c echo.Context) error {
	out, err := h.svc.ProductStats()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) LeadStats(c echo.Context) error {
	out, err := h.svc.LeadStats(time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
