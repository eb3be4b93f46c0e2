// internal/domain/models.go
package domain

import "time"

// FieldType restricts a form field to the two supported input widths.
// The wire values ("text", "textarea") are kept for compatibility with
// the stored JSON schemas.
type FieldType string

const (
	FieldTypeShortText FieldType = "text"
	FieldTypeLongText  FieldType = "textarea"
)

// FormField is one input of a script model's dynamic form. Fields only
// exist inside their parent model; slice order is the display/fill order.
type FormField struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required"`
	Type        FieldType `json:"type"`
}

// ScriptModel pairs an AI system instruction with a dynamic input form.
// PromptTemplate is the legacy free-text template kept for models
// authored before dynamic fields existed.
type ScriptModel struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	SystemInstruction string      `json:"systemInstruction"`
	PromptTemplate    string      `json:"promptTemplate,omitempty"`
	Fields            []FormField `json:"fields"`
	Icon              string      `json:"icon"`
	Active            bool        `json:"-"`
}

// ClientUser joins the credential (users table) and profile (clients
// table) rows. Password is stored and compared verbatim; see
// internal/auth for the verifier seam.
type ClientUser struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	CompanyName string `json:"companyName,omitempty"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	CreatedAt   int64  `json:"createdAt"` // epoch millis on the wire
}

// GeneratedScript is one history entry. ModelName is a snapshot of the
// model's name at generation time, not a live reference.
type GeneratedScript struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Topic     string `json:"topic"`
	ModelName string `json:"modelName"`
	Timestamp int64  `json:"timestamp"` // epoch millis on the wire
}

// Role is the authenticated view a session may reach.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// EpochMillis converts a time to the wire representation used by
// ClientUser.CreatedAt and GeneratedScript.Timestamp.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}
