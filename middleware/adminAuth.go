package middleware

import (
	"context"
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminChecker reports whether an email belongs to an admin; unknown users are not admins.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin must run after Authenticate. A subject without
// a user record is treated like a non-admin and gets 403.
func RequireAdmin(users AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := loggerFrom(c)
		email := Subject(c)
		if email == "" {
			utils.JSONError(c, logger, http.StatusUnauthorized, "UnAuthorized access", "")
			return
		}

		isAdmin, err := users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			logger.Error("Admin lookup failed", zap.String("email", email), zap.Error(err))
			utils.JSONError(c, logger, http.StatusInternalServerError, "Internal Server Error", "")
			return
		}
		if !isAdmin {
			utils.JSONError(c, logger, http.StatusForbidden, "Forbidden access", "")
			return
		}
		c.Next()
	}
}
