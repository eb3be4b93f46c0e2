// internal/storage/model_repo.go
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/foxonlabs/foxon-backend/internal/domain"
)

// Specific errors for portal storage operations
var (
	ErrModelNotFound  = errors.New("modelo não encontrado")
	ErrClientNotFound = errors.New("cliente não encontrado")
	ErrCouldNotSave   = errors.New("erro ao salvar no banco")
)

// --- Script model operations ---

// ListModels returns every active script model in storage order. A NULL
// fields column decodes to an empty slice, never nil on the wire.
func ListModels(ctx context.Context, db *sql.DB) ([]domain.ScriptModel, error) {
	sqlStatement := `SELECT id, name, description, system_instruction,
		COALESCE(prompt_template, ''), COALESCE(icon, 'sparkles'), fields
		FROM models WHERE is_active = 1`
	rows, err := db.QueryContext(ctx, sqlStatement)
	if err != nil {
		customLog.Warnf("Storage: Failed to list models: %v", err)
		return nil, fmt.Errorf("database error listing models: %w", err)
	}
	defer rows.Close()

	models := []domain.ScriptModel{}
	for rows.Next() {
		var m domain.ScriptModel
		var rawFields sql.NullString
		var description sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &description, &m.SystemInstruction,
			&m.PromptTemplate, &m.Icon, &rawFields); err != nil {
			customLog.Warnf("Storage: Failed to scan model row: %v", err)
			return nil, fmt.Errorf("database error scanning model: %w", err)
		}
		m.Description = description.String
		m.Active = true
		m.Fields = decodeFields(rawFields)
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database error iterating models: %w", err)
	}
	return models, nil
}

// FindModel retrieves one active model by id.
func FindModel(ctx context.Context, db *sql.DB, id string) (*domain.ScriptModel, error) {
	sqlStatement := `SELECT id, name, description, system_instruction,
		COALESCE(prompt_template, ''), COALESCE(icon, 'sparkles'), fields
		FROM models WHERE id = ? AND is_active = 1 LIMIT 1`
	row := db.QueryRowContext(ctx, sqlStatement, id)

	var m domain.ScriptModel
	var rawFields sql.NullString
	var description sql.NullString
	err := row.Scan(&m.ID, &m.Name, &description, &m.SystemInstruction,
		&m.PromptTemplate, &m.Icon, &rawFields)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrModelNotFound
		}
		customLog.Warnf("Storage: Failed to find model %s: %v", id, err)
		return nil, fmt.Errorf("database error finding model: %w", err)
	}
	m.Description = description.String
	m.Active = true
	m.Fields = decodeFields(rawFields)
	return &m, nil
}

// SaveModel upserts a script model by id, overwriting every column.
// A save always reactivates the row, so saving a soft-deleted model
// makes it visible again.
func SaveModel(ctx context.Context, db *sql.DB, m *domain.ScriptModel) error {
	fieldsJSON, err := json.Marshal(m.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode fields schema: %w", err)
	}

	sqlStatement := `INSERT INTO models (id, name, description, system_instruction, prompt_template, icon, fields, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			system_instruction = excluded.system_instruction,
			prompt_template = excluded.prompt_template,
			icon = excluded.icon,
			fields = excluded.fields,
			is_active = 1`
	_, err = db.ExecContext(ctx, sqlStatement,
		m.ID, m.Name, m.Description, m.SystemInstruction, m.PromptTemplate, m.Icon, string(fieldsJSON))
	if err != nil {
		customLog.Warnf("Storage: Failed to save model %s: %v", m.ID, err)
		return fmt.Errorf("%w: %v", ErrCouldNotSave, err)
	}
	return nil
}

// SoftDeleteModel clears the active flag. The row stays in place and
// history entries keep their denormalized model name.
func SoftDeleteModel(ctx context.Context, db *sql.DB, id string) error {
	sqlStatement := `UPDATE models SET is_active = 0 WHERE id = ?`
	if _, err := db.ExecContext(ctx, sqlStatement, id); err != nil {
		customLog.Warnf("Storage: Failed to soft-delete model %s: %v", id, err)
		return fmt.Errorf("database error deleting model: %w", err)
	}
	return nil
}

// decodeFields unmarshals the stored field schema, tolerating NULL and
// malformed JSON (both degrade to an empty schema).
func decodeFields(raw sql.NullString) []domain.FormField {
	fields := []domain.FormField{}
	if raw.Valid && raw.String != "" {
		if err := json.Unmarshal([]byte(raw.String), &fields); err != nil {
			customLog.Warnf("Storage: Ignoring malformed fields schema: %v", err)
			return []domain.FormField{}
		}
	}
	return fields
}
