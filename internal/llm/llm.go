// Package llm normalizes heterogeneous completion-provider wire protocols
// into a single call: given a system instruction and the full message
// history, produce the next assistant message as plain text.
//
// Backends are stateless between calls. Every invocation resends the entire
// accumulated history; stored messages stay backend-agnostic role/content
// pairs and are translated to each provider's shape only at request time,
// so a session started against one backend can continue against the other.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"timeloom/internal/store"
)

// ErrEmptyResponse marks a well-formed reply with no extractable text. The
// caller gets told "no content" instead of persisting an empty turn.
var ErrEmptyResponse = errors.New("backend returned no text content")

// BackendError carries the raw diagnostic payload of a failed completion
// call for display. The gateway never retries.
type BackendError struct {
	Backend string
	Status  int
	Body    []byte
}

func (e *BackendError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s backend returned HTTP %d: %s", e.Backend, e.Status, e.Body)
	}
	return fmt.Sprintf("%s backend returned a malformed payload: %s", e.Backend, e.Body)
}

// Backend produces the next assistant message for a conversation.
type Backend interface {
	Name() string
	Complete(ctx context.Context, system string, history []store.Message) (string, error)
}

func postJSON(ctx context.Context, hc *http.Client, backend, url string, headers map[string]string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s request: %w", backend, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", backend, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s backend: %w", backend, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", backend, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &BackendError{Backend: backend, Status: resp.StatusCode, Body: raw}
	}

	return raw, nil
}
