package handlers

import (
	"net/http"

	"doctorchamber/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the appointment-type catalog endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// GetAppointments returns every appointment type with the slots still free
// on the requested date.
func (h *CatalogHandler) GetAppointments(c *gin.Context) {
	date := c.Query("date")

	types, err := h.Service.AvailabilityForDate(date)
	if err != nil {
		getLogger(c).Error("failed to compute availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}

	c.JSON(http.StatusOK, types)
}

// GetSpecialties returns the names-only catalog projection.
func (h *CatalogHandler) GetSpecialties(c *gin.Context) {
	specialties, err := h.Service.Specialties()
	if err != nil {
		getLogger(c).Error("failed to load specialties", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load specialties"})
		return
	}

	c.JSON(http.StatusOK, specialties)
}
