package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"qmstracker/internal/errors"
	"qmstracker/internal/service"
)

// AnalyticsHandler handles dashboard and reporting endpoints.
type AnalyticsHandler struct {
	analytics service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analytics service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Dashboard godoc
// @Summary Get dashboard statistics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats
// @Failure 500 {object} errors.ErrorResponse
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	stats, err := h.analytics.DashboardStats(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}

// Performance godoc
// @Summary Get performance metrics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PerformanceMetrics
// @Failure 500 {object} errors.ErrorResponse
// @Router /analytics/performance [get]
func (h *AnalyticsHandler) Performance(c echo.Context) error {
	metrics, err := h.analytics.PerformanceMetrics(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, metrics)
}
