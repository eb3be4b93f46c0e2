// api/models/portal_models.go
package models

// --- Auth Request/Response Structs ---

// LoginRequest defines the structure for the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse defines the structure for the login response body
type LoginResponse struct {
	Role  string `json:"role"`
	Token string `json:"token"`
}

// SessionResponse is returned when a saved session marker is restored.
type SessionResponse struct {
	Role string `json:"role"`
}

// --- Generation Request/Response Structs ---

// GenerateRequest carries a generation attempt: the chosen model, one
// value per dynamic field id, and the legacy topic for models without
// fields.
type GenerateRequest struct {
	ModelID string            `json:"modelId" binding:"required"`
	Values  map[string]string `json:"values"`
	Topic   string            `json:"topic"`
}

// GenerateResponse returns the generated script together with the
// history entry minted for it.
type GenerateResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Topic     string `json:"topic"`
	ModelName string `json:"modelName"`
	Timestamp int64  `json:"timestamp"`
}

// --- Generic responses ---

// SuccessResponse is the flat acknowledgement used by the CRUD routes.
type SuccessResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}

// HealthResponse reports liveness and the persistence driver state.
type HealthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}
