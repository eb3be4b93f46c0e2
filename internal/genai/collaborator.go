// internal/genai/collaborator.go
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// CompletionRequest is the normalized request sent to a generation
// collaborator. The system instruction travels separately from the
// assembled body; it is never concatenated into the prompt.
type CompletionRequest struct {
	Prompt            string
	SystemInstruction string
	Temperature       float32
}

// Collaborator is the external text-generation service. Implementations
// return the raw generated text; empty output is a valid success.
type Collaborator interface {
	GenerateText(ctx context.Context, req CompletionRequest) (string, error)
}

// EmptyResponseFallback is returned in place of empty collaborator output.
// It is a successful result, not an error: callers persist it to history
// like any other generation.
const EmptyResponseFallback = "A IA não retornou texto. O conteúdo pode ter sido bloqueado por filtros de segurança ou o modelo está sobrecarregado."

// Generation failure categories. Raw collaborator errors never reach the
// caller; they are classified here into one localized message each.
var (
	ErrAPIKey        = errors.New("erro de autenticação: chave de API inválida ou ausente")
	ErrModelNotFound = errors.New("erro 404: o modelo solicitado não está disponível para sua chave de API")
	ErrQuotaExceeded = errors.New("erro 429: cota de uso da API excedida. Tente novamente mais tarde")
	ErrSafetyBlocked = errors.New("bloqueio de segurança: o tópico solicitado violou as diretrizes da IA")
)

// ClassifyError maps a raw collaborator failure to one of the fixed
// categories by substring match, falling back to a generic message that
// carries the original text.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key") || strings.Contains(msg, "API_KEY"):
		return ErrAPIKey
	case strings.Contains(msg, "404") || strings.Contains(msg, "not found"):
		return ErrModelNotFound
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota"):
		return ErrQuotaExceeded
	case strings.Contains(msg, "SAFETY"):
		return ErrSafetyBlocked
	default:
		return fmt.Errorf("erro na IA: %s", msg)
	}
}

// IsGenerationError reports whether err came out of ClassifyError, so the
// transport layer can tell generation failures apart from validation or
// persistence ones.
func IsGenerationError(err error) bool {
	if errors.Is(err, ErrAPIKey) || errors.Is(err, ErrModelNotFound) ||
		errors.Is(err, ErrQuotaExceeded) || errors.Is(err, ErrSafetyBlocked) {
		return true
	}
	return err != nil && strings.HasPrefix(err.Error(), "erro na IA: ")
}
