// internal/storage/database.go
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // Driver registration

	"github.com/foxonlabs/foxon-backend/config"
	"github.com/foxonlabs/foxon-backend/internal/logger"
)

var (
	customLog = logger.NewLogger()
)

// Health is the explicit result of the bootstrap connectivity check. It
// is threaded through as a dependency instead of living in a package
// variable, so handlers can be tested in both states.
type Health struct {
	Connected bool
	Driver    string
}

// Connect initializes the SQLite connection pool and ensures the portal
// schema (users, clients, models, history) exists. It also seeds the
// administrator credential row.
func Connect(cfg *config.Config) (*sql.DB, Health, error) {
	dbPath := filepath.Join(cfg.DatabaseDir, cfg.DatabaseFile)
	customLog.Printf("Storage: Initializing portal database: %s", dbPath)

	down := Health{Connected: false, Driver: "sqlite"}

	if err := os.MkdirAll(cfg.DatabaseDir, 0750); err != nil {
		customLog.Warnf("Storage: Error creating data directory '%s': %v", cfg.DatabaseDir, err)
		return nil, down, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		customLog.Warnf("Storage: Failed to open portal db '%s': %v", dbPath, err)
		return nil, down, fmt.Errorf("failed to open portal db: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		customLog.Warnf("Storage: Failed to ping portal db '%s': %v", dbPath, err)
		return nil, down, fmt.Errorf("failed to connect to portal db: %w", err)
	}
	customLog.Println("Storage: Portal database connection successful.")

	statements := []struct {
		name string
		sql  string
	}{
		{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`},
		{"clients", `
		CREATE TABLE IF NOT EXISTS clients (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			full_name TEXT NOT NULL,
			company_name TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		);`},
		{"models", `
		CREATE TABLE IF NOT EXISTS models (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			system_instruction TEXT NOT NULL,
			prompt_template TEXT,
			icon TEXT DEFAULT 'sparkles',
			fields TEXT,
			is_active INTEGER DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`},
		{"history", `
		CREATE TABLE IF NOT EXISTS history (
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			topic TEXT NOT NULL,
			model_name TEXT,
			created_at TIMESTAMP NOT NULL
		);`},
	}

	for _, stmt := range statements {
		if _, err = db.Exec(stmt.sql); err != nil {
			db.Close()
			customLog.Warnf("Storage: Failed to create %s table: %v", stmt.name, err)
			return nil, down, fmt.Errorf("failed to ensure %s table: %w", stmt.name, err)
		}
	}
	customLog.Println("Storage: Portal tables ensured.")

	// Seed the fixed administrator row. The Session/Role Gate compares the
	// admin pair from config, but the row keeps the username reserved.
	seedSQL := `INSERT INTO users (id, username, password_hash, role)
		VALUES (?, ?, ?, 'ADMIN')
		ON CONFLICT (username) DO NOTHING`
	if _, err = db.Exec(seedSQL, newID(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		db.Close()
		customLog.Warnf("Storage: Failed to seed admin user: %v", err)
		return nil, down, fmt.Errorf("failed to seed admin user: %w", err)
	}

	return db, Health{Connected: true, Driver: "sqlite"}, nil
}

// newID mints a fresh row identifier.
func newID() string {
	return uuid.New().String()
}
