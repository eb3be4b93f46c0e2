// api/handlers/client_handler.go
package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foxonlabs/foxon-backend/api/models"
	"github.com/foxonlabs/foxon-backend/config"
	"github.com/foxonlabs/foxon-backend/internal/auth"
	"github.com/foxonlabs/foxon-backend/internal/core"
	"github.com/foxonlabs/foxon-backend/internal/domain"
	"github.com/foxonlabs/foxon-backend/internal/storage"
)

// ClientHandler owns the client directory routes.
type ClientHandler struct {
	DB  *sql.DB
	Cfg *config.Config
}

func NewClientHandler(db *sql.DB, cfg *config.Config) *ClientHandler {
	return &ClientHandler{DB: db, Cfg: cfg}
}

// List handles GET /api/clients. Storage failures degrade to an empty
// list.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := storage.ListClients(c.Request.Context(), h.DB)
	if err != nil {
		customLog.Warnf("Listing clients failed, returning empty list: %v", err)
		c.JSON(http.StatusOK, []domain.ClientUser{})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// Save handles POST /api/clients: upsert keyed by username. The stored
// password follows the configured auth mode.
func (h *ClientHandler) Save(c *gin.Context) {
	var client domain.ClientUser
	if err := c.ShouldBindJSON(&client); err != nil {
		customLog.Warnf("Client binding error: %v", err)
		_ = c.Error(err)
		return
	}

	if err := core.ValidateClient(&client); err != nil {
		_ = c.Error(err)
		return
	}

	if h.Cfg.AuthMode == "bcrypt" {
		hashed, err := auth.HashPassword(client.Password)
		if err != nil {
			_ = c.Error(err)
			return
		}
		client.Password = hashed
	}

	id, err := storage.SaveClient(c.Request.Context(), h.DB, &client)
	if err != nil {
		customLog.Warnf("Failed to save client %s: %v", client.Username, err)
		_ = c.Error(err)
		return
	}

	customLog.Printf("Saved client %s (%s)", client.Username, id)
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, ID: id})
}

// Delete handles DELETE /api/clients/:id. Credential and profile go
// together.
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := storage.DeleteClient(c.Request.Context(), h.DB, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
