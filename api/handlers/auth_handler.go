// api/handlers/auth_handler.go
package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foxonlabs/foxon-backend/api/models"
	"github.com/foxonlabs/foxon-backend/config"
	"github.com/foxonlabs/foxon-backend/internal/auth"
	"github.com/foxonlabs/foxon-backend/internal/core"
	"github.com/foxonlabs/foxon-backend/internal/domain"
	"github.com/foxonlabs/foxon-backend/internal/storage"
)

// AuthHandler implements the Session/Role Gate over HTTP.
type AuthHandler struct {
	DB       *sql.DB
	Cfg      *config.Config
	Verifier auth.CredentialVerifier
}

func NewAuthHandler(db *sql.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		DB:       db,
		Cfg:      cfg,
		Verifier: auth.NewVerifier(cfg.AuthMode),
	}
}

// Login handles POST /api/auth/login. The administrator pair is compared
// by exact equality against configuration; anything else is looked up in
// the client directory. Unknown username and wrong password produce the
// identical generic failure.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		customLog.Warnf("Login binding error: %v", err)
		_ = c.Error(err)
		return
	}

	if auth.CheckAdminCredentials(req.Username, req.Password, h.Cfg.AdminUsername, h.Cfg.AdminPassword) {
		h.issueSession(c, domain.RoleAdmin)
		return
	}

	client, err := storage.FindClientByUsername(c.Request.Context(), h.DB, core.NormalizeUsername(req.Username))
	if err != nil {
		if !errors.Is(err, storage.ErrClientNotFound) {
			customLog.Warnf("Login lookup failed for %s: %v", req.Username, err)
		}
		_ = c.Error(auth.ErrInvalidCredentials)
		return
	}

	if !h.Verifier.Verify(req.Password, client.Password) {
		_ = c.Error(auth.ErrInvalidCredentials)
		return
	}

	h.issueSession(c, domain.RoleClient)
}

// Logout handles POST /api/auth/logout. Sessions are stateless markers;
// the acknowledgement tells the caller to discard its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// Session handles GET /api/auth/session, restoring the role carried by a
// saved session marker without re-authenticating.
func (h *AuthHandler) Session(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists {
		_ = c.Error(auth.ErrTokenInvalid)
		return
	}
	c.JSON(http.StatusOK, models.SessionResponse{Role: role.(string)})
}

func (h *AuthHandler) issueSession(c *gin.Context, role domain.Role) {
	token, err := auth.GenerateSessionToken(string(role), h.Cfg.SessionSecret)
	if err != nil {
		_ = c.Error(err)
		return
	}
	customLog.Printf("Login successful, role %s", role)
	c.JSON(http.StatusOK, models.LoginResponse{Role: string(role), Token: token})
}
