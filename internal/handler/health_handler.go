package handler

import (
	"context"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HemInfotech/hem_api/internal/utils"
)

var startTime = time.Now()

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// HealthHandler provides health endpoint.
type HealthHandler struct {
	checks map[string]HealthCheck
}

// NewHealthHandler creates a new HealthHandler. Optional dependencies that
// are not configured are simply left out of checks.
func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// GetHealth handles GET /api/health. Any failing dependency turns the
// response into a 503.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "healthy"
	deps := gin.H{}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			status = "unhealthy"
			deps[name] = "disconnected"
			continue
		}
		deps[name] = "connected"
	}

	code := 200
	if status != "healthy" {
		code = 503
	}
	utils.JSON(c, code, gin.H{
		"status":       status,
		"uptime":       int(time.Since(startTime).Seconds()),
		"dependencies": deps,
	})
}
