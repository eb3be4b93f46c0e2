// internal/genai/scriptwriter.go
package genai

import (
	"context"

	"github.com/foxonlabs/foxon-backend/internal/core"
	"github.com/foxonlabs/foxon-backend/internal/domain"
)

// Creativity setting for script generation: varied but coherent output.
const scriptTemperature = 0.7

// Scriptwriter turns a script model plus submitted input into generated
// text. It is stateless; persisting the result to history is the
// caller's responsibility.
type Scriptwriter struct {
	collab Collaborator
}

func NewScriptwriter(collab Collaborator) *Scriptwriter {
	return &Scriptwriter{collab: collab}
}

// WriteScript assembles the prompt, invokes the collaborator and
// normalizes the outcome. Empty collaborator output becomes the fixed
// fallback sentence and still counts as success; failures come back as
// classified, localized errors.
func (s *Scriptwriter) WriteScript(ctx context.Context, model *domain.ScriptModel, input core.SubmittedInput) (string, error) {
	prompt := core.BuildPrompt(model, input)

	text, err := s.collab.GenerateText(ctx, CompletionRequest{
		Prompt:            prompt,
		SystemInstruction: model.SystemInstruction,
		Temperature:       scriptTemperature,
	})
	if err != nil {
		return "", ClassifyError(err)
	}

	if text == "" {
		return EmptyResponseFallback, nil
	}
	return text, nil
}
