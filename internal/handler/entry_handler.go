package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"qmstracker/internal/errors"
	"qmstracker/internal/model"
	"qmstracker/internal/service"
)

// EntryHandler handles entry endpoints.
type EntryHandler struct {
	entries service.EntryService
}

// NewEntryHandler creates a new entry handler.
func NewEntryHandler(entries service.EntryService) *EntryHandler {
	return &EntryHandler{entries: entries}
}

// CreateEntryRequest represents a new entry payload.
type CreateEntryRequest struct {
	PortalName     string `json:"portalName"`
	BidNumber      string `json:"bidNumber"`
	HunterName     string `json:"hunterName"`
	ContactName    string `json:"contactName"`
	Email          string `json:"email" validate:"omitempty,email"`
	BidTitle       string `json:"bidTitle"`
	Category       string `json:"category"`
	Quantity       string `json:"quantity"`
	PortalLink     string `json:"portalLink" validate:"omitempty,url"`
	HuntingRemarks string `json:"huntingRemarks"`
	Status         string `json:"status"`
	Date           string `json:"date"`
	DueDate        string `json:"dueDate"`
	AssignedBy     string `json:"assignedBy"`
}

func (r *CreateEntryRequest) toModel() *model.Entry {
	return &model.Entry{
		PortalName:     r.PortalName,
		BidNumber:      r.BidNumber,
		HunterName:     r.HunterName,
		ContactName:    r.ContactName,
		Email:          r.Email,
		BidTitle:       r.BidTitle,
		Category:       r.Category,
		Quantity:       r.Quantity,
		PortalLink:     r.PortalLink,
		HuntingRemarks: r.HuntingRemarks,
		Status:         r.Status,
		Date:           r.Date,
		DueDate:        r.DueDate,
		AssignedBy:     r.AssignedBy,
	}
}

// ListEntries godoc
// @Summary List entries from both collections
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param portalName query string false "Portal name substring"
// @Param bidNumber query string false "Bid number substring"
// @Param hunterName query string false "Hunter name substring"
// @Param fromDate query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param toDate query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {array} model.Entry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /entries [get]
func (h *EntryHandler) ListEntries(c echo.Context) error {
	filters := service.EntryFilters{
		PortalName: c.QueryParam("portalName"),
		BidNumber:  c.QueryParam("bidNumber"),
		HunterName: c.QueryParam("hunterName"),
		FromDate:   c.QueryParam("fromDate"),
		ToDate:     c.QueryParam("toDate"),
	}

	entries, err := h.entries.List(c.Request().Context(), filters)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, entries)
}

// GetEntry godoc
// @Summary Get one entry by id
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} model.Entry
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /entries/{id} [get]
func (h *EntryHandler) GetEntry(c echo.Context) error {
	entry, err := h.entries.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, entry)
}

// CreateEntry godoc
// @Summary Create a new entry in the Assignment collection
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEntryRequest true "Entry payload"
// @Success 201 {object} model.Entry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /entries [post]
func (h *EntryHandler) CreateEntry(c echo.Context) error {
	var req CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.entries.Create(c.Request().Context(), req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateEntry godoc
// @Summary Shallow-merge updates into an entry
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body model.EntryUpdate true "Fields to merge"
// @Success 200 {object} model.Entry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /entries/{id} [put]
func (h *EntryHandler) UpdateEntry(c echo.Context) error {
	var updates model.EntryUpdate
	if err := c.Bind(&updates); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.entries.Update(c.Request().Context(), c.Param("id"), &updates)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteEntry godoc
// @Summary Delete an entry from whichever collection holds it
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} model.DeleteResult
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /entries/{id} [delete]
func (h *EntryHandler) DeleteEntry(c echo.Context) error {
	result, err := h.entries.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}
