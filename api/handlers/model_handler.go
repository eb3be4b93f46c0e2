// api/handlers/model_handler.go
package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/foxonlabs/foxon-backend/api/models"
	"github.com/foxonlabs/foxon-backend/config"
	"github.com/foxonlabs/foxon-backend/internal/core"
	"github.com/foxonlabs/foxon-backend/internal/domain"
	"github.com/foxonlabs/foxon-backend/internal/storage"
)

// ModelHandler owns the script-model registry routes.
type ModelHandler struct {
	DB  *sql.DB
	Cfg *config.Config
}

func NewModelHandler(db *sql.DB, cfg *config.Config) *ModelHandler {
	return &ModelHandler{DB: db, Cfg: cfg}
}

// List handles GET /api/models. A storage failure degrades to an empty
// list so a down database does not take the listing views with it.
func (h *ModelHandler) List(c *gin.Context) {
	modelList, err := storage.ListModels(c.Request.Context(), h.DB)
	if err != nil {
		customLog.Warnf("Listing models failed, returning empty list: %v", err)
		c.JSON(http.StatusOK, []domain.ScriptModel{})
		return
	}
	c.JSON(http.StatusOK, modelList)
}

// Save handles POST /api/models: full-row upsert by id. A save always
// reactivates the model.
func (h *ModelHandler) Save(c *gin.Context) {
	var model domain.ScriptModel
	if err := c.ShouldBindJSON(&model); err != nil {
		customLog.Warnf("Model binding error: %v", err)
		_ = c.Error(err)
		return
	}
	if model.Fields == nil {
		model.Fields = []domain.FormField{}
	}
	if model.ID == "" {
		model.ID = uuid.New().String()
	}

	if err := core.ValidateModel(&model); err != nil {
		_ = c.Error(err)
		return
	}

	if err := storage.SaveModel(c.Request.Context(), h.DB, &model); err != nil {
		customLog.Warnf("Failed to save model %s: %v", model.ID, err)
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// Delete handles DELETE /api/models/:id (soft delete).
func (h *ModelHandler) Delete(c *gin.Context) {
	if err := storage.SoftDeleteModel(c.Request.Context(), h.DB, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
