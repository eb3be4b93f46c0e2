package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/foxonlabs/foxon-backend/internal/logger"
	"github.com/joho/godotenv"
)

var (
	customLog = logger.NewLogger()
)

// Config holds application configuration values
type Config struct {
	ServerPort    string
	DatabaseDir   string
	DatabaseFile  string
	StaticDir     string
	SessionSecret string

	// Session/Role Gate: fixed administrator credential pair, compared by
	// exact string equality (never looked up in the client directory).
	AdminUsername string
	AdminPassword string

	// AuthMode selects the credential verifier: "plain" (compatibility
	// default) or "bcrypt".
	AuthMode string

	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
	GeminiTimeout time.Duration
}

// LoadConfig loads configuration from environment variables.
// It uses a .env file for local development if present (ignores it for production).
func LoadConfig() (*Config, error) {
	customLog.Println("Loading configuration from environment variables...")

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			customLog.Warnf("Warning: Error loading .env file: %v", err)
		}
	}

	port := getEnv("SERVER_PORT", ":3000")
	dbDir := getEnv("DATABASE_DIRECTORY", "data")
	dbFile := getEnv("DATABASE_FILE", "foxon.db")
	staticDir := getEnv("STATIC_DIR", "dist")
	sessionSecret := getEnv("SESSION_SECRET", "")

	adminUser := getEnv("ADMIN_USERNAME", "admin")
	adminPass := getEnv("ADMIN_PASSWORD", "admin")
	authMode := getEnv("AUTH_MODE", "plain")

	geminiKey := os.Getenv("GEMINI_API_KEY") // checked at call time, not at boot
	geminiBaseURL := getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	geminiModel := getEnv("GEMINI_MODEL", "gemini-3-flash-preview")
	geminiTimeoutStr := getEnv("GEMINI_TIMEOUT_SECONDS", "60")

	// --- Validation and Parsing ---
	if sessionSecret == "" {
		return nil, errors.New("SESSION_SECRET environment variable must be set")
	}
	if adminPass == "admin" {
		customLog.Warnln("WARNING: ADMIN_PASSWORD is set to the default 'admin'!")
	}
	if authMode != "plain" && authMode != "bcrypt" {
		customLog.Warnf("Invalid AUTH_MODE '%s'. Using 'plain'.", authMode)
		authMode = "plain"
	}

	geminiTimeout, err := strconv.Atoi(geminiTimeoutStr)
	if err != nil || geminiTimeout <= 0 {
		customLog.Warnf("Invalid GEMINI_TIMEOUT_SECONDS '%s'. Using default 60s. Error: %v", geminiTimeoutStr, err)
		geminiTimeout = 60
	}

	cfg := &Config{
		ServerPort:    port,
		DatabaseDir:   dbDir,
		DatabaseFile:  dbFile,
		StaticDir:     staticDir,
		SessionSecret: sessionSecret,
		AdminUsername: adminUser,
		AdminPassword: adminPass,
		AuthMode:      authMode,
		GeminiAPIKey:  geminiKey,
		GeminiBaseURL: geminiBaseURL,
		GeminiModel:   geminiModel,
		GeminiTimeout: time.Second * time.Duration(geminiTimeout),
	}

	customLog.Printf("Configuration loaded successfully. Port: %s, Model: %s, Auth: %s", cfg.ServerPort, cfg.GeminiModel, cfg.AuthMode)
	return cfg, nil
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
