package handlers

import (
	"net/http"

	"doctorsportal/services/availability"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves the treatment catalog.
type ServiceHandler struct {
	Availability availability.AvailabilityService
}

func NewServiceHandler(as availability.AvailabilityService) *ServiceHandler {
	return &ServiceHandler{Availability: as}
}

// ListServicesHandler handles GET /services. ?fields=name returns names only.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	logger := getLogger(c)
	nameOnly := c.Query("fields") == "name"

	services, err := h.Availability.ListServices(c.Request.Context(), nameOnly)
	if err != nil {
		logger.Error("Failed to fetch services", zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to fetch services", "")
		return
	}
	c.JSON(http.StatusOK, services)
}

// AvailabilityHandler handles GET /available?date=.
func (h *ServiceHandler) AvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, logger, http.StatusBadRequest, "Missing date", "query parameter 'date' is required")
		return
	}

	services, err := h.Availability.AvailableOn(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to resolve availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to resolve availability", "")
		return
	}
	c.JSON(http.StatusOK, services)
}
