package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// SubjectKey is the gin context key holding the authenticated email.
const SubjectKey = "email"

// TokenVerifier checks a session token and returns the email it is bound to.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authenticate rejects requests without an Authorization header with 401
// and requests whose token fails verification with 403.
func Authenticate(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := loggerFrom(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, logger, http.StatusUnauthorized, "UnAuthorized access", "")
			return
		}

		// The token is the second space-separated part; the scheme word is not checked.
		var tokenString string
		if parts := strings.Split(authHeader, " "); len(parts) > 1 {
			tokenString = parts[1]
		}

		email, err := tokens.Verify(tokenString)
		if err != nil {
			utils.JSONError(c, logger, http.StatusForbidden, "Forbidden access", "")
			return
		}

		c.Set(SubjectKey, email)
		c.Next()
	}
}

// Subject returns the email set by Authenticate.
func Subject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}
