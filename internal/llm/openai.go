package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"timeloom/internal/store"
)

// OpenAI speaks the chat-completions API: no dedicated system field, so the
// instruction is injected as the leading message with the reserved "system"
// role. Responses carry the text directly on choices[0].message.content.
type OpenAI struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	HTTPClient  *http.Client
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []store.Message `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Complete(ctx context.Context, system string, history []store.Message) (string, error) {
	messages := make([]store.Message, 0, len(history)+1)
	messages = append(messages, store.Message{Role: "system", Content: system})
	messages = append(messages, history...)

	payload := openAIRequest{
		Model:       o.Model,
		Messages:    messages,
		MaxTokens:   o.MaxTokens,
		Temperature: o.Temperature,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + o.APIKey,
	}

	raw, err := postJSON(ctx, o.HTTPClient, o.Name(), strings.TrimRight(o.BaseURL, "/")+"/v1/chat/completions", headers, payload)
	if err != nil {
		return "", err
	}

	var parsed openAIResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &BackendError{Backend: o.Name(), Body: raw}
	}

	if len(parsed.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
