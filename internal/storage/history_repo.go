// internal/storage/history_repo.go
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/foxonlabs/foxon-backend/internal/domain"
)

// Retrieval cap for the history view. Older rows stay in storage but are
// not reachable through ListHistory.
const historyLimit = 50

// --- History ledger operations ---

// ListHistory returns up to the 50 most recent entries, newest first.
func ListHistory(ctx context.Context, db *sql.DB) ([]domain.GeneratedScript, error) {
	sqlStatement := `SELECT id, content, topic, COALESCE(model_name, ''), created_at
		FROM history ORDER BY created_at DESC LIMIT ?`
	rows, err := db.QueryContext(ctx, sqlStatement, historyLimit)
	if err != nil {
		customLog.Warnf("Storage: Failed to list history: %v", err)
		return nil, fmt.Errorf("database error listing history: %w", err)
	}
	defer rows.Close()

	entries := []domain.GeneratedScript{}
	for rows.Next() {
		var e domain.GeneratedScript
		var createdAt time.Time
		if err := rows.Scan(&e.ID, &e.Content, &e.Topic, &e.ModelName, &createdAt); err != nil {
			customLog.Warnf("Storage: Failed to scan history row: %v", err)
			return nil, fmt.Errorf("database error scanning history: %w", err)
		}
		e.Timestamp = domain.EpochMillis(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database error iterating history: %w", err)
	}
	return entries, nil
}

// AppendHistory inserts one generation record. A missing id or timestamp
// is filled in server-side.
func AppendHistory(ctx context.Context, db *sql.DB, e *domain.GeneratedScript) error {
	if e.ID == "" {
		e.ID = newID()
	}
	if e.Timestamp == 0 {
		e.Timestamp = domain.EpochMillis(time.Now())
	}

	sqlStatement := `INSERT INTO history (id, content, topic, model_name, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, sqlStatement,
		e.ID, e.Content, e.Topic, e.ModelName, time.UnixMilli(e.Timestamp).UTC())
	if err != nil {
		customLog.Warnf("Storage: Failed to append history entry %s: %v", e.ID, err)
		return fmt.Errorf("%w: %v", ErrCouldNotSave, err)
	}
	return nil
}

// DeleteHistory removes one entry unconditionally by id.
func DeleteHistory(ctx context.Context, db *sql.DB, id string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id); err != nil {
		customLog.Warnf("Storage: Failed to delete history entry %s: %v", id, err)
		return fmt.Errorf("database error deleting history entry: %w", err)
	}
	return nil
}
