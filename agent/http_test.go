// SPDX-License-Identifier: LGPL-3.0-or-later

package agent

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestHTTPTransport_RoundTripsThroughChiRouter(t *testing.T) {
	r := chi.NewRouter()
	NewHTTPHandler(r, echoRegistry())

	server := httptest.NewServer(r)
	defer server.Close()

	transport := NewHTTPTransport(server.URL)
	raw, err := transport.Invoke(context.Background(), "echo", map[string]any{"greeting": "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if out["status"] != "ok" || out["greeting"] != "hi" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestHTTPTransport_MalformedJSONProducesErrorStatus(t *testing.T) {
	r := chi.NewRouter()
	NewHTTPHandler(r, echoRegistry())

	server := httptest.NewServer(r)
	defer server.Close()

	resp, err := server.Client().Post(server.URL+"/invoke", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("unexpected error reading body: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if out["status"] != "error" {
		t.Fatalf("expected status=error for malformed JSON, got %+v", out)
	}
}
