package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(bs booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: bs}
}

// CreateBookingHandler handles POST /booking. A booking that already exists
// for the same patient and date is reported with 200 and success=false.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	}

	recorded, err := h.BookingService.Record(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrBookingExists) {
			logger.Info("Booking already exists",
				zap.String("date", req.Date),
				zap.String("patientName", req.PatientName),
			)
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Booking Already Exist."})
			return
		}
		logger.Error("Failed to record booking", zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to record booking", "")
		return
	}

	logger.Info("Booking recorded", zap.String("bookingId", recorded.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Data Inserted!"})
}

// PatientBookingsHandler handles GET /booking?patient=. Callers may only list their own bookings.
func (h *BookingHandler) PatientBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	patient := c.Query("patient")
	if patient != middleware.Subject(c) {
		utils.JSONError(c, logger, http.StatusForbidden, "Forbidden access", "")
		return
	}

	bookings, err := h.BookingService.ListForPatient(c.Request.Context(), patient)
	if err != nil {
		logger.Error("Failed to fetch bookings", zap.String("patient", patient), zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to fetch bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}
