package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	UserService   user.UserService
	DoctorService doctor.DoctorService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService, ds doctor.DoctorService) *AdminHandler {
	return &AdminHandler{
		UserService:   us,
		DoctorService: ds,
	}
}

// MakeAdminHandler handles PUT /user/admin/:email.
func (ah *AdminHandler) MakeAdminHandler(c *gin.Context) {
	logger := getLogger(c)
	email := c.Param("email")

	result, err := ah.UserService.MakeAdmin(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, logger, http.StatusNotFound, "User not found", "")
			return
		}
		logger.Error("Failed to promote user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to promote user", "")
		return
	}

	logger.Info("User promoted to admin", zap.String("email", email))
	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	}})
}

// AddDoctorHandler handles POST /doctor.
func (ah *AdminHandler) AddDoctorHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Doctor
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid doctor", err.Error())
		return
	}

	created, err := ah.DoctorService.Add(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, doctor.ErrInvalidDoctor):
			utils.JSONError(c, logger, http.StatusBadRequest, "Invalid doctor", err.Error())
		case errors.Is(err, doctor.ErrDoctorExists):
			utils.JSONError(c, logger, http.StatusConflict, "Doctor already exists", "")
		default:
			logger.Error("Failed to add doctor", zap.Error(err))
			utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to add doctor", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": created.ID})
}

// ListDoctorsHandler handles GET /doctors.
func (ah *AdminHandler) ListDoctorsHandler(c *gin.Context) {
	logger := getLogger(c)
	doctors, err := ah.DoctorService.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch doctors", zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to fetch doctors", "")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// RemoveDoctorHandler handles DELETE /doctor/:email.
func (ah *AdminHandler) RemoveDoctorHandler(c *gin.Context) {
	logger := getLogger(c)
	email := c.Param("email")

	deleted, err := ah.DoctorService.Remove(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, doctor.ErrDoctorNotFound) {
			utils.JSONError(c, logger, http.StatusNotFound, "Doctor not found", "")
			return
		}
		logger.Error("Failed to remove doctor", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to remove doctor", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
