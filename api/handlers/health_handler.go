// api/handlers/health_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foxonlabs/foxon-backend/api/models"
	"github.com/foxonlabs/foxon-backend/internal/logger"
	"github.com/foxonlabs/foxon-backend/internal/storage"
)

var (
	customLog = logger.NewLogger()
)

// HealthHandler reports liveness and the persistence state established at
// boot. The health result is injected, not read from global state.
type HealthHandler struct {
	Health storage.Health
}

func NewHealthHandler(health storage.Health) *HealthHandler {
	return &HealthHandler{Health: health}
}

// Check handles GET /api/health.
func (h *HealthHandler) Check(c *gin.Context) {
	db := "sqlite"
	if !h.Health.Connected {
		db = "disconnected"
	}
	c.JSON(http.StatusOK, models.HealthResponse{Status: "online", DB: db})
}
