// SPDX-License-Identifier: LGPL-3.0-or-later

package agent

import (
	"context"
	"encoding/json"
	"fmt"
)

// LocalTransport dispatches directly into a Registry within the same
// process. It is the default transport: the three agents share one process
// and talk to each other through these in-memory calls rather than HTTP,
// per spec's "single-process ... in-memory transport is permitted".
type LocalTransport struct {
	registry *Registry
}

// NewLocalTransport wraps a Registry for in-process invocation.
func NewLocalTransport(registry *Registry) *LocalTransport {
	return &LocalTransport{registry: registry}
}

// Invoke marshals payload, runs it through the registry's Dispatch, and
// re-marshals the result back into a raw JSON response — round-tripping
// through JSON even in-process so LocalTransport and HTTPTransport callers
// observe identical wire semantics.
func (t *LocalTransport) Invoke(ctx context.Context, command string, payload any) (json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request payload: %w", err)
	}

	body := t.registry.Dispatch(ctx, Envelope{Command: command, Payload: raw})

	out, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal response payload: %w", err)
	}
	return out, nil
}
