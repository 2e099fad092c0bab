package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type staticAdmins map[string]bool

func (s staticAdmins) IsAdmin(_ context.Context, email string) (bool, error) {
	return s[email], nil
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func newTestEngine(tokens *utils.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(zap.NewNop()))
	RegisterRoutes(r, &handlers.HandlerBundle{
		Tokens:                 tokens,
		Admins:                 staticAdmins{"admin@example.com": true},
		ListServicesHandler:    ok,
		AvailabilityHandler:    ok,
		CreateBookingHandler:   ok,
		PatientBookingsHandler: ok,
		UpsertUserHandler:      ok,
		CheckAdminHandler:      ok,
		ListUsersHandler:       ok,
		MakeAdminHandler:       ok,
		AddDoctorHandler:       ok,
		ListDoctorsHandler:     ok,
		RemoveDoctorHandler:    ok,
		RootHandler:            ok,
		HealthHandler:          ok,
	})
	return r
}

func TestRouteGuards(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	patient, _ := tokens.Issue("ann@example.com")
	admin, _ := tokens.Issue("admin@example.com")
	r := newTestEngine(tokens)

	tests := []struct {
		method string
		path   string
		token  string
		want   int
	}{
		{http.MethodGet, "/services", "", http.StatusOK},
		{http.MethodGet, "/available?date=x", "", http.StatusOK},
		{http.MethodPost, "/booking", "", http.StatusOK},
		{http.MethodPut, "/user/ann@example.com", "", http.StatusOK},
		{http.MethodGet, "/admin/ann@example.com", "", http.StatusOK},
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},

		{http.MethodGet, "/booking?patient=ann@example.com", "", http.StatusUnauthorized},
		{http.MethodGet, "/booking?patient=ann@example.com", patient, http.StatusOK},
		{http.MethodGet, "/users", "", http.StatusUnauthorized},
		{http.MethodGet, "/users", patient, http.StatusOK},

		{http.MethodPut, "/user/admin/ann@example.com", patient, http.StatusForbidden},
		{http.MethodPut, "/user/admin/ann@example.com", admin, http.StatusOK},
		{http.MethodPost, "/doctor", "", http.StatusUnauthorized},
		{http.MethodPost, "/doctor", patient, http.StatusForbidden},
		{http.MethodPost, "/doctor", admin, http.StatusOK},
		{http.MethodGet, "/doctors", admin, http.StatusOK},
		{http.MethodDelete, "/doctor/lee@example.com", patient, http.StatusForbidden},
		{http.MethodDelete, "/doctor/lee@example.com", admin, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
