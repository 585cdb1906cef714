// SPDX-License-Identifier: LGPL-3.0-or-later

package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// NewHTTPHandler mounts a single POST /invoke route on r, backed by
// registry. Used when an agent runs as its own process reachable over
// COORDINATION_AGENT_URL / COMPUTE_AGENT_URL / GRID_AGENT_URL rather than
// sharing a process with its callers.
func NewHTTPHandler(r chi.Router, registry *Registry) {
	r.Post("/invoke", func(w http.ResponseWriter, req *http.Request) {
		var env Envelope
		if err := json.NewDecoder(req.Body).Decode(&env); err != nil {
			writeJSON(w, errEnvelope(err.Error()))
			return
		}
		if env.ContextID == "" {
			env.ContextID = uuid.New().String()
		}

		body := registry.Dispatch(req.Context(), env)
		writeJSON(w, body)
	})
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HTTPTransport is the client-side binding: it POSTs an Envelope to a
// remote agent's /invoke route and returns the raw response body. A fresh
// context id is minted with google/uuid for every call.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

// NewHTTPTransport targets a remote agent at baseURL (e.g.
// "http://localhost:9003"), matching the upstream fetch timeout used
// elsewhere in this codebase.
func NewHTTPTransport(baseURL string) *HTTPTransport {
	return &HTTPTransport{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *HTTPTransport) Invoke(ctx context.Context, command string, payload any) (json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request payload: %w", err)
	}

	envelope := Envelope{ContextID: uuid.New().String(), Command: command, Payload: raw}
	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/invoke", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build invoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w", command, err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read invoke response: %w", err)
	}
	return out, nil
}
