// api/handlers/history_handler.go
package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foxonlabs/foxon-backend/api/models"
	"github.com/foxonlabs/foxon-backend/config"
	"github.com/foxonlabs/foxon-backend/internal/domain"
	"github.com/foxonlabs/foxon-backend/internal/storage"
)

// HistoryHandler owns the generation history routes.
type HistoryHandler struct {
	DB  *sql.DB
	Cfg *config.Config
}

func NewHistoryHandler(db *sql.DB, cfg *config.Config) *HistoryHandler {
	return &HistoryHandler{DB: db, Cfg: cfg}
}

// List handles GET /api/history: up to 50 entries, newest first. Storage
// failures degrade to an empty list.
func (h *HistoryHandler) List(c *gin.Context) {
	entries, err := storage.ListHistory(c.Request.Context(), h.DB)
	if err != nil {
		customLog.Warnf("Listing history failed, returning empty list: %v", err)
		c.JSON(http.StatusOK, []domain.GeneratedScript{})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Append handles POST /api/history.
func (h *HistoryHandler) Append(c *gin.Context) {
	var entry domain.GeneratedScript
	if err := c.ShouldBindJSON(&entry); err != nil {
		customLog.Warnf("History binding error: %v", err)
		_ = c.Error(err)
		return
	}

	if err := storage.AppendHistory(c.Request.Context(), h.DB, &entry); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// Delete handles DELETE /api/history/:id.
func (h *HistoryHandler) Delete(c *gin.Context) {
	if err := storage.DeleteHistory(c.Request.Context(), h.DB, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
