// SPDX-License-Identifier: LGPL-3.0-or-later

package agent

import (
	"context"
	"encoding/json"
)

// Handler processes one decoded request payload and returns the JSON-
// marshalable response body. A Handler never needs to set the "status"
// field itself on transport-level failures — Dispatch does that around it.
type Handler func(ctx context.Context, payload json.RawMessage) (any, error)

// Transport dispatches an Envelope to whichever agent process owns its
// command and returns the raw JSON response body.
type Transport interface {
	Invoke(ctx context.Context, command string, payload any) (json.RawMessage, error)
}

// Registry maps command names to Handlers for a single agent. It is the
// dispatch table shared by LocalTransport (direct call) and the HTTP
// binding (one POST /invoke route backed by the same table).
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry builds a Registry from a command-name-to-handler map.
func NewRegistry(handlers map[string]Handler) *Registry {
	return &Registry{handlers: handlers}
}

// Dispatch decodes an Envelope's command against the registry and runs the
// matching Handler. An unknown command never reaches a Handler and produces
// {status:"error", message} directly; a Handler error (including a payload
// that fails to decode) is wrapped the same way, per §7. A malformed
// envelope is rejected by the HTTP binding before Dispatch is called.
func (r *Registry) Dispatch(ctx context.Context, env Envelope) any {
	handler, ok := r.handlers[env.Command]
	if !ok {
		return errEnvelope("Unknown command '" + env.Command + "'")
	}

	body, err := handler(ctx, env.Payload)
	if err != nil {
		return errEnvelope(err.Error())
	}
	return body
}
