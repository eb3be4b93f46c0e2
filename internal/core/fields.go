// internal/core/fields.go
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/foxonlabs/foxon-backend/internal/domain"
)

// Validation errors reported before anything reaches persistence.
var (
	ErrModelInvalid      = errors.New("nome e instrução do sistema são obrigatórios")
	ErrClientInvalid     = errors.New("usuário, senha e nome completo são obrigatórios")
	ErrSubmissionInvalid = errors.New("preencha todos os campos obrigatórios")
)

// Allowed field types keyed by their wire value.
var allowedFieldTypes = map[string]domain.FieldType{
	"text":     domain.FieldTypeShortText,
	"textarea": domain.FieldTypeLongText,
}

// NormalizeFieldType checks a wire value against the two-value enum,
// returning the typed version. Empty input defaults to short text.
func NormalizeFieldType(raw string) (domain.FieldType, bool) {
	if raw == "" {
		return domain.FieldTypeShortText, true
	}
	ft, ok := allowedFieldTypes[strings.ToLower(raw)]
	return ft, ok
}

// NormalizeUsername applies the entry rules for client usernames:
// lower-cased and space-stripped.
func NormalizeUsername(username string) string {
	return strings.ReplaceAll(strings.ToLower(username), " ", "")
}

// ValidateModel enforces the save-time invariants of a script model:
// non-empty name and system instruction, valid field types and unique
// field ids. A model with zero fields is valid (the generation form
// degrades to the legacy free-text box).
func ValidateModel(m *domain.ScriptModel) error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.SystemInstruction) == "" {
		return ErrModelInvalid
	}

	seen := make(map[string]bool, len(m.Fields))
	for i := range m.Fields {
		f := &m.Fields[i]
		ft, ok := NormalizeFieldType(string(f.Type))
		if !ok {
			return fmt.Errorf("%w: tipo de campo inválido %q", ErrModelInvalid, f.Type)
		}
		f.Type = ft
		if f.ID == "" {
			f.ID = uuid.New().String()
		}
		if seen[f.ID] {
			return fmt.Errorf("%w: campo duplicado %q", ErrModelInvalid, f.ID)
		}
		seen[f.ID] = true
	}
	return nil
}

// ValidateClient enforces the save-time invariants of a client record and
// normalizes the username in place.
func ValidateClient(c *domain.ClientUser) error {
	c.Username = NormalizeUsername(c.Username)
	if c.Username == "" || c.Password == "" || strings.TrimSpace(c.FullName) == "" {
		return ErrClientInvalid
	}
	return nil
}

// ValidateSubmission checks that every required field of the model has a
// non-empty submitted value. Optional fields may be absent; the assembler
// renders those as "not provided".
func ValidateSubmission(m *domain.ScriptModel, values map[string]string) error {
	for _, f := range m.Fields {
		if f.Required && strings.TrimSpace(values[f.ID]) == "" {
			return fmt.Errorf("%w: %s", ErrSubmissionInvalid, f.Label)
		}
	}
	return nil
}

// --- Draft field editing ---
//
// Field schemas are composed on an in-memory draft before save; fields
// have no lifecycle of their own.

// NewField returns a fresh field with a unique id and default attributes.
func NewField() domain.FormField {
	return domain.FormField{
		ID:       uuid.New().String(),
		Label:    "Novo Campo",
		Type:     domain.FieldTypeShortText,
		Required: false,
	}
}

// AddField appends a new default field to the draft.
func AddField(m *domain.ScriptModel) domain.FormField {
	f := NewField()
	m.Fields = append(m.Fields, f)
	return f
}

// RemoveField deletes the field with the given id, keeping order.
func RemoveField(m *domain.ScriptModel, id string) {
	kept := m.Fields[:0]
	for _, f := range m.Fields {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	m.Fields = kept
}

// UpdateField overwrites the attributes of the field with the given id.
// The id itself is preserved. Returns false if no such field exists.
func UpdateField(m *domain.ScriptModel, id string, updated domain.FormField) bool {
	for i := range m.Fields {
		if m.Fields[i].ID == id {
			updated.ID = id
			m.Fields[i] = updated
			return true
		}
	}
	return false
}
