package handlers

import (
	"errors"
	"io"
	"net/http"

	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenIssuer mints a session token for an email.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// UserHandler handles the user directory endpoints.
type UserHandler struct {
	UserService user.UserService
	Tokens      TokenIssuer
}

func NewUserHandler(us user.UserService, tokens TokenIssuer) *UserHandler {
	return &UserHandler{UserService: us, Tokens: tokens}
}

// UpsertUserHandler handles PUT /user/:email. It stores the posted profile
// fields and returns the write result together with a fresh access token.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	logger := getLogger(c)
	email := c.Param("email")

	fields := map[string]interface{}{}
	if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid user payload", err.Error())
		return
	}

	result, err := h.UserService.Upsert(c.Request.Context(), email, fields)
	if err != nil {
		if errors.Is(err, user.ErrInvalidEmail) {
			utils.JSONError(c, logger, http.StatusBadRequest, "Invalid email", "")
			return
		}
		logger.Error("Failed to upsert user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to save user", "")
		return
	}

	token, err := h.Tokens.Issue(email)
	if err != nil {
		logger.Error("Failed to issue access token", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to issue access token", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "accessToken": token})
}

// CheckAdminHandler handles GET /admin/:email.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	logger := getLogger(c)
	email := c.Param("email")

	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		logger.Error("Admin lookup failed", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to check admin", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// ListUsersHandler handles GET /users.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	logger := getLogger(c)
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch all users", zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to fetch users", "")
		return
	}
	c.JSON(http.StatusOK, users)
}
