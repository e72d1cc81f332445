package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"qmstracker/internal/errors"
	"qmstracker/internal/model"
	"qmstracker/internal/service"
)

// ThemeHandler handles display preference endpoints.
type ThemeHandler struct {
	themes service.ThemeService
}

// NewThemeHandler creates a new theme handler.
func NewThemeHandler(themes service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

// GetTheme godoc
// @Summary Get the saved display preferences
// @Tags theme
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Theme
// @Failure 500 {object} errors.ErrorResponse
// @Router /theme [get]
func (h *ThemeHandler) GetTheme(c echo.Context) error {
	theme, err := h.themes.Get(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, theme)
}

// UpdateTheme godoc
// @Summary Merge a preference change
// @Tags theme
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ThemeUpdate true "Preferences to merge"
// @Success 200 {object} model.Theme
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /theme [put]
func (h *ThemeHandler) UpdateTheme(c echo.Context) error {
	var updates model.ThemeUpdate
	if err := c.Bind(&updates); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	theme, err := h.themes.Update(c.Request().Context(), &updates)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, theme)
}

// ResetTheme godoc
// @Summary Restore the default display preferences
// @Tags theme
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Theme
// @Failure 500 {object} errors.ErrorResponse
// @Router /theme [delete]
func (h *ThemeHandler) ResetTheme(c echo.Context) error {
	theme, err := h.themes.Reset(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, theme)
}
