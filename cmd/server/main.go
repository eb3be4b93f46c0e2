// cmd/server/main.go
package main

import (
	"os"

	"github.com/foxonlabs/foxon-backend/api"
	"github.com/foxonlabs/foxon-backend/config"
	"github.com/foxonlabs/foxon-backend/internal/genai"
	"github.com/foxonlabs/foxon-backend/internal/logger"
	"github.com/foxonlabs/foxon-backend/internal/storage"
)

var (
	customLog = logger.NewLogger()
)

func main() {
	customLog.Println("Starting Foxon portal backend...")

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		customLog.Fatalf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// 2. Initialize Database Connection
	db, health, err := storage.Connect(cfg)
	if err != nil {
		customLog.Fatalf("Failed to initialize portal database: %v", err)
		os.Exit(1)
	}
	defer func() {
		customLog.Println("Closing portal database connection...")
		if err := db.Close(); err != nil {
			customLog.Printf("Error closing portal database: %v", err)
		}
	}()

	// 3. Generation collaborator
	collab := genai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiTimeout)
	if cfg.GeminiAPIKey == "" {
		customLog.Warnln("GEMINI_API_KEY is not set; generation requests will fail until configured.")
	}

	// 4. Setup Router (passing dependencies)
	router := api.SetupRouter(db, cfg, health, collab)

	// 5. Start Server
	customLog.Printf("Server listening on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		customLog.Fatalf("Failed to start server: %v", err)
	}
}
