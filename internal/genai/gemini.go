// internal/genai/gemini.go
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/foxonlabs/foxon-backend/internal/logger"
)

var (
	customLog = logger.NewLogger()
)

// GeminiClient calls the Google generative language REST API. The key is
// checked at call time, not at construction, so the portal still boots
// without one configured.
type GeminiClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGeminiClient builds the collaborator for the configured model.
func NewGeminiClient(apiKey, baseURL, model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		Temperature float32 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// GenerateText implements Collaborator against the generateContent
// endpoint. Errors embed the upstream status and message so that
// ClassifyError can pattern-match them.
func (g *GeminiClient) GenerateText(ctx context.Context, req CompletionRequest) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("API key não configurada no sistema")
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}},
		},
	}
	body.GenerationConfig.Temperature = req.Temperature
	if req.SystemInstruction != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemInstruction}}}
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	apiURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	customLog.Printf("Gerando roteiro com modelo: %s", g.model)

	httpResp, err := g.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(httpResp.Body)
		var errResp struct {
			Error struct {
				Message string `json:"message"`
				Status  string `json:"status"`
			} `json:"error"`
		}
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("gemini API error (%d): %s", httpResp.StatusCode, errResp.Error.Message)
		}
		return "", fmt.Errorf("gemini API error (%d): %s", httpResp.StatusCode, string(raw))
	}

	var response geminiResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&response); err != nil {
		return "", err
	}

	if response.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("blocked by SAFETY filter: %s", response.PromptFeedback.BlockReason)
	}

	// An empty candidate list is an empty result, not a failure; the
	// caller substitutes the fixed fallback sentence.
	var text string
	if len(response.Candidates) > 0 {
		for _, part := range response.Candidates[0].Content.Parts {
			text += part.Text
		}
	}
	return text, nil
}
