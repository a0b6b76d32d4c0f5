package handlers

import (
	"net/http"

	"dochouse/models"
	"dochouse/services/availability"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the slot-availability endpoint.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAvailableHandler handles GET /available?date=D. An absent date matches
// no bookings and yields the full catalog.
func (h *AvailabilityHandler) GetAvailableHandler(c *gin.Context) {
	date := c.Query("date")

	services, err := h.Service.AvailableSlots(date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}
