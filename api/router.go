// api/router.go
package api

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/foxonlabs/foxon-backend/api/handlers"
	"github.com/foxonlabs/foxon-backend/api/middleware"
	"github.com/foxonlabs/foxon-backend/config"
	"github.com/foxonlabs/foxon-backend/internal/genai"
	"github.com/foxonlabs/foxon-backend/internal/storage"
)

// SetupRouter initializes the Gin router and sets up all routes.
func SetupRouter(db *sql.DB, cfg *config.Config, health storage.Health, collab genai.Collaborator) *gin.Engine {
	router := gin.Default() // Includes Logger and Recovery

	router.Use(cors.Default())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SessionMiddleware(cfg.SessionSecret))

	// Initialize Handlers
	healthHandler := handlers.NewHealthHandler(health)
	authHandler := handlers.NewAuthHandler(db, cfg)
	modelHandler := handlers.NewModelHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db, cfg)
	historyHandler := handlers.NewHistoryHandler(db, cfg)
	generateHandler := handlers.NewGenerateHandler(db, cfg, genai.NewScriptwriter(collab))

	loginLimiter := middleware.NewRateLimiter()

	apiRoutes := router.Group("/api")
	{
		apiRoutes.GET("/health", healthHandler.Check)

		apiRoutes.POST("/auth/login", middleware.RateLimitMiddleware(loginLimiter), authHandler.Login)
		apiRoutes.POST("/auth/logout", authHandler.Logout)
		apiRoutes.GET("/auth/session", authHandler.Session)

		apiRoutes.GET("/models", modelHandler.List)
		apiRoutes.POST("/models", modelHandler.Save)
		apiRoutes.DELETE("/models/:id", modelHandler.Delete)

		apiRoutes.GET("/clients", clientHandler.List)
		apiRoutes.POST("/clients", clientHandler.Save)
		apiRoutes.DELETE("/clients/:id", clientHandler.Delete)

		apiRoutes.GET("/history", historyHandler.List)
		apiRoutes.POST("/history", historyHandler.Append)
		apiRoutes.DELETE("/history/:id", historyHandler.Delete)

		apiRoutes.POST("/generate", generateHandler.Generate)
	}

	// Everything outside /api serves the SPA shell; unmatched API paths
	// stay JSON.
	router.NoRoute(spaFallback(cfg.StaticDir))

	return router
}

func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint API não encontrado"})
			return
		}

		// Serve the requested asset if it exists, otherwise the app shell.
		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.String(http.StatusInternalServerError, "Erro ao carregar a aplicação.")
			return
		}
		c.File(index)
	}
}
