// internal/core/prompt.go
package core

import (
	"strings"

	"github.com/foxonlabs/foxon-backend/internal/domain"
)

// Fixed prompt fragments. These are part of the request contract with the
// generation collaborator; changing them changes every generated script.
const (
	promptHeader      = "DETALHES DO PEDIDO:\n\n"
	promptTopicPrefix = "Tópico/Contexto: "
	promptNotProvided = "Não informado"
	promptClosing     = "\nPor favor, escreva um roteiro completo de vídeo curto (Shorts/Reels) em PORTUGUÊS baseado nas instruções do sistema fornecidas."
)

// SubmittedInput carries what the client filled in: one value per field
// id, plus the legacy free-text topic for models without fields.
type SubmittedInput struct {
	Topic  string
	Values map[string]string
}

// BuildPrompt deterministically assembles the request body sent to the
// generation collaborator. Field values are emitted in declared order; a
// missing or empty value renders as "Não informado". Required-ness is a
// precondition enforced at the boundary, not re-checked here.
func BuildPrompt(model *domain.ScriptModel, input SubmittedInput) string {
	var b strings.Builder

	if len(model.Fields) > 0 {
		b.WriteString(promptHeader)
		for _, field := range model.Fields {
			value := input.Values[field.ID]
			if value == "" {
				value = promptNotProvided
			}
			b.WriteString(field.Label)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteString("\n")
		}
	} else {
		b.WriteString(promptTopicPrefix)
		b.WriteString(input.Topic)
		b.WriteString("\n")
	}

	b.WriteString(promptClosing)
	return b.String()
}

// TopicSummary derives the short history summary for a generation: the
// first field's submitted value when the model has fields, otherwise the
// legacy topic.
func TopicSummary(model *domain.ScriptModel, input SubmittedInput) string {
	if len(model.Fields) > 0 {
		if v := input.Values[model.Fields[0].ID]; v != "" {
			return v
		}
		return model.Name
	}
	return input.Topic
}
