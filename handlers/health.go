package handlers

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and the latest dependency check.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(m *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: m}
}

func (h *HealthHandler) RootHandler(c *gin.Context) {
	c.String(http.StatusOK, "Hello Doctors Portal")
}

// HealthHandler handles GET /health; 503 when any checked dependency is down.
func (h *HealthHandler) HealthHandler(c *gin.Context) {
	status := h.Monitor.Status()
	code := http.StatusOK
	if !status.Mongo || (status.Redis != nil && !*status.Redis) {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
