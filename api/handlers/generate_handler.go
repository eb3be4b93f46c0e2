// api/handlers/generate_handler.go
package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foxonlabs/foxon-backend/api/models"
	"github.com/foxonlabs/foxon-backend/config"
	"github.com/foxonlabs/foxon-backend/internal/core"
	"github.com/foxonlabs/foxon-backend/internal/domain"
	"github.com/foxonlabs/foxon-backend/internal/genai"
	"github.com/foxonlabs/foxon-backend/internal/storage"
)

// GenerateHandler runs the generation pipeline: resolve the model,
// validate the submission, assemble and call the collaborator, then log
// the result to history.
type GenerateHandler struct {
	DB     *sql.DB
	Cfg    *config.Config
	Writer *genai.Scriptwriter
}

func NewGenerateHandler(db *sql.DB, cfg *config.Config, writer *genai.Scriptwriter) *GenerateHandler {
	return &GenerateHandler{DB: db, Cfg: cfg, Writer: writer}
}

// Generate handles POST /api/generate.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		customLog.Warnf("Generate binding error: %v", err)
		_ = c.Error(err)
		return
	}

	model, err := storage.FindModel(c.Request.Context(), h.DB, req.ModelID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	input := core.SubmittedInput{Topic: req.Topic, Values: req.Values}

	// Required fields are enforced here, at the boundary; the assembler
	// treats anything missing as "not provided".
	if err := core.ValidateSubmission(model, input.Values); err != nil {
		_ = c.Error(err)
		return
	}

	content, err := h.Writer.WriteScript(c.Request.Context(), model, input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	entry := domain.GeneratedScript{
		Content:   content,
		Topic:     core.TopicSummary(model, input),
		ModelName: model.Name,
		Timestamp: domain.EpochMillis(time.Now()),
	}

	// History logging is fire-and-forget: a ledger failure must never
	// mask a successful generation.
	if err := storage.AppendHistory(c.Request.Context(), h.DB, &entry); err != nil {
		customLog.Warnf("Failed to log generation to history: %v", err)
	}

	c.JSON(http.StatusOK, models.GenerateResponse{
		ID:        entry.ID,
		Content:   entry.Content,
		Topic:     entry.Topic,
		ModelName: entry.ModelName,
		Timestamp: entry.Timestamp,
	})
}
