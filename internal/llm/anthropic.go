package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"timeloom/internal/store"
)

const anthropicVersion = "2023-06-01"

// Anthropic speaks the messages API: the system instruction travels as a
// dedicated top-level field, and responses arrive as typed content blocks.
type Anthropic struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	HTTPClient  *http.Client
}

type anthropicRequest struct {
	Model       string          `json:"model"`
	System      string          `json:"system"`
	Messages    []store.Message `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (a *Anthropic) Name() string { return "anthropic" }

func (a *Anthropic) Complete(ctx context.Context, system string, history []store.Message) (string, error) {
	payload := anthropicRequest{
		Model:       a.Model,
		System:      system,
		Messages:    history,
		MaxTokens:   a.MaxTokens,
		Temperature: a.Temperature,
	}

	headers := map[string]string{
		"x-api-key":         a.APIKey,
		"anthropic-version": anthropicVersion,
	}

	raw, err := postJSON(ctx, a.HTTPClient, a.Name(), strings.TrimRight(a.BaseURL, "/")+"/v1/messages", headers, payload)
	if err != nil {
		return "", err
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &BackendError{Backend: a.Name(), Body: raw}
	}

	// Text blocks concatenate in order; non-text blocks are skipped.
	var b strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
