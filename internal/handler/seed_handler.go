package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"qmstracker/internal/model"
	"qmstracker/internal/querycache"
	"qmstracker/internal/repository"
)

// SeedHandler handles sample data endpoints.
type SeedHandler struct {
	entries repository.EntryRepository
	cache   *querycache.Cache
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(entries repository.EntryRepository, cache *querycache.Cache) *SeedHandler {
	return &SeedHandler{entries: entries, cache: cache}
}

// SeedEntriesResponse represents the seed response.
type SeedEntriesResponse struct {
	Message    string `json:"message"`
	Assignment int    `json:"assignment"`
	Sourcing   int    `json:"sourcing"`
}

// SeedEntries godoc
// @Summary Replace both collections with sample entries
// @Tags seed
// @Produce json
// @Success 200 {object} SeedEntriesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/entries [post]
func (h *SeedHandler) SeedEntries(c echo.Context) error {
	ctx := c.Request().Context()
	assignment, sourcing := SampleEntries()

	if err := h.entries.SaveCollection(ctx, model.SourceAssignment, assignment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("failed to seed assignment entries: %v", err),
		})
	}
	if err := h.entries.SaveCollection(ctx, model.SourceSourcing, sourcing); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("failed to seed sourcing entries: %v", err),
		})
	}

	if h.cache != nil {
		h.cache.InvalidatePrefix("qms:")
	}

	return c.JSON(http.StatusOK, SeedEntriesResponse{
		Message:    "Entries seeded successfully",
		Assignment: len(assignment),
		Sourcing:   len(sourcing),
	})
}

// SampleEntries builds a small realistic dataset. Ids follow the
// same millisecond scheme as the create path, offset so a batch never
// collides with itself.
func SampleEntries() (assignment, sourcing []model.Entry) {
	base := time.Now().Add(-30 * 24 * time.Hour)
	id := func(i int) string {
		return strconv.FormatInt(base.Add(time.Duration(i)*time.Minute).UnixMilli(), 10)
	}
	at := func(i int) time.Time {
		return base.Add(time.Duration(i) * time.Minute)
	}

	assignment = []model.Entry{
		{
			ID: id(0), PortalName: "SAM.gov", BidNumber: "W912DY-25-R-0041",
			HunterName: "MFakheem", BidTitle: "HVAC maintenance, Building 400",
			Category: "Facilities", Quantity: "1", Status: "active",
			Date: "2025-07-01", DueDate: "2025-07-20",
			TimeStamp: at(0), CreatedAt: at(0), UpdatedAt: at(0),
		},
		{
			ID: id(1), PortalName: "BidNet", BidNumber: "BN-88211",
			HunterName: "jdoe", BidTitle: "Network switch refresh",
			Category: "IT Hardware", Quantity: "24", Status: "completed",
			Date: "2025-07-03", DueDate: "2025-07-15",
			TimeStamp: at(1), CreatedAt: at(1), UpdatedAt: at(1),
		},
		{
			ID: id(2), PortalName: "Ariba", BidNumber: "AR-2025-517",
			HunterName: "asmith", BidTitle: "Laboratory consumables, annual",
			Category: "Medical", Quantity: "600", Status: "active",
			Date: "2025-07-10", DueDate: "2025-08-01",
			TimeStamp: at(2), CreatedAt: at(2), UpdatedAt: at(2),
		},
	}
	sourcing = []model.Entry{
		{
			ID: id(3), PortalName: "SAM.gov", BidNumber: "47QSWA25R0012",
			HunterName: "jdoe", BidTitle: "Office furniture, region 4",
			Category: "Furniture", Quantity: "120", Status: "active",
			Date: "2025-07-05", DueDate: "2025-07-30",
			TimeStamp: at(3), CreatedAt: at(3), UpdatedAt: at(3),
		},
		{
			ID: id(4), PortalName: "Unison", BidNumber: "UN-40233",
			HunterName: "MFakheem", BidTitle: "Diesel generator spares",
			Category: "Industrial", Quantity: "8", Status: "active",
			Date: "2025-07-12", DueDate: "2025-08-05",
			TimeStamp: at(4), CreatedAt: at(4), UpdatedAt: at(4),
		},
	}
	return assignment, sourcing
}
