// internal/storage/client_repo.go
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/foxonlabs/foxon-backend/internal/domain"
)

// --- Client directory operations ---
//
// A client is a credential row (users) plus a profile row (clients).
// The two are written inside one transaction and removed together via
// the users→clients foreign-key cascade; a profile never outlives its
// credential or vice versa.

// ListClients returns every client with credential and profile joined.
// Passwords come back verbatim, as stored.
func ListClients(ctx context.Context, db *sql.DB) ([]domain.ClientUser, error) {
	sqlStatement := `SELECT c.id, c.full_name, COALESCE(c.company_name, ''), u.username, u.password_hash, c.created_at
		FROM clients c
		JOIN users u ON c.user_id = u.id
		WHERE u.role = 'CLIENT'`
	rows, err := db.QueryContext(ctx, sqlStatement)
	if err != nil {
		customLog.Warnf("Storage: Failed to list clients: %v", err)
		return nil, fmt.Errorf("database error listing clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.ClientUser{}
	for rows.Next() {
		var c domain.ClientUser
		var createdAt time.Time
		if err := rows.Scan(&c.ID, &c.FullName, &c.CompanyName, &c.Username, &c.Password, &createdAt); err != nil {
			customLog.Warnf("Storage: Failed to scan client row: %v", err)
			return nil, fmt.Errorf("database error scanning client: %w", err)
		}
		c.CreatedAt = domain.EpochMillis(createdAt)
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database error iterating clients: %w", err)
	}
	return clients, nil
}

// FindClientByUsername retrieves a single client credential+profile pair.
func FindClientByUsername(ctx context.Context, db *sql.DB, username string) (*domain.ClientUser, error) {
	sqlStatement := `SELECT c.id, c.full_name, COALESCE(c.company_name, ''), u.username, u.password_hash, c.created_at
		FROM clients c
		JOIN users u ON c.user_id = u.id
		WHERE u.role = 'CLIENT' AND u.username = ? LIMIT 1`
	row := db.QueryRowContext(ctx, sqlStatement, username)

	var c domain.ClientUser
	var createdAt time.Time
	err := row.Scan(&c.ID, &c.FullName, &c.CompanyName, &c.Username, &c.Password, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		customLog.Warnf("Storage: Failed to find client %s: %v", username, err)
		return nil, fmt.Errorf("database error finding client: %w", err)
	}
	c.CreatedAt = domain.EpochMillis(createdAt)
	return &c, nil
}

// SaveClient upserts a client keyed by username: an existing credential
// keeps its server-side identity (the submitted id is advisory on create
// only) and gets its password and profile overwritten. Credential and
// profile writes are a single all-or-nothing unit of work.
// Returns the server-side user id.
func SaveClient(ctx context.Context, db *sql.DB, c *domain.ClientUser) (string, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		customLog.Warnf("Storage: Failed to begin client save transaction: %v", err)
		return "", fmt.Errorf("%w: %v", ErrCouldNotSave, err)
	}
	defer tx.Rollback()

	userID := c.ID
	if userID == "" {
		userID = newID()
	}

	// Upsert credential by username; the pre-existing id wins on conflict.
	upsertUserSQL := `INSERT INTO users (id, username, password_hash, role)
		VALUES (?, ?, ?, 'CLIENT')
		ON CONFLICT (username) DO UPDATE SET password_hash = excluded.password_hash
		RETURNING id`
	if err := tx.QueryRowContext(ctx, upsertUserSQL, userID, c.Username, c.Password).Scan(&userID); err != nil {
		customLog.Warnf("Storage: Failed to upsert credential for %s: %v", c.Username, err)
		return "", fmt.Errorf("%w: %v", ErrCouldNotSave, err)
	}

	// Upsert profile keyed by the credential id.
	var profileID string
	err = tx.QueryRowContext(ctx, `SELECT id FROM clients WHERE user_id = ? LIMIT 1`, userID).Scan(&profileID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		insertSQL := `INSERT INTO clients (id, user_id, full_name, company_name) VALUES (?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, insertSQL, newID(), userID, c.FullName, c.CompanyName); err != nil {
			customLog.Warnf("Storage: Failed to insert profile for %s: %v", c.Username, err)
			return "", fmt.Errorf("%w: %v", ErrCouldNotSave, err)
		}
	case err != nil:
		customLog.Warnf("Storage: Failed to look up profile for %s: %v", c.Username, err)
		return "", fmt.Errorf("%w: %v", ErrCouldNotSave, err)
	default:
		updateSQL := `UPDATE clients SET full_name = ?, company_name = ? WHERE user_id = ?`
		if _, err := tx.ExecContext(ctx, updateSQL, c.FullName, c.CompanyName, userID); err != nil {
			customLog.Warnf("Storage: Failed to update profile for %s: %v", c.Username, err)
			return "", fmt.Errorf("%w: %v", ErrCouldNotSave, err)
		}
	}

	if err := tx.Commit(); err != nil {
		customLog.Warnf("Storage: Failed to commit client save for %s: %v", c.Username, err)
		return "", fmt.Errorf("%w: %v", ErrCouldNotSave, err)
	}
	return userID, nil
}

// DeleteClient removes credential and profile together. The path id is
// the profile id; deleting the credential row cascades to the profile.
// An id with no profile row is treated as a credential id directly.
func DeleteClient(ctx context.Context, db *sql.DB, id string) error {
	var userID string
	err := db.QueryRowContext(ctx, `SELECT user_id FROM clients WHERE id = ? LIMIT 1`, id).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		userID = id
	} else if err != nil {
		customLog.Warnf("Storage: Failed to resolve client %s: %v", id, err)
		return fmt.Errorf("database error deleting client: %w", err)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID); err != nil {
		customLog.Warnf("Storage: Failed to delete client %s: %v", id, err)
		return fmt.Errorf("database error deleting client: %w", err)
	}
	return nil
}
