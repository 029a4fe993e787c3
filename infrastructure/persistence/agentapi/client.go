// Package agentapi implements the StateStore port against an external
// agent-state service: an opaque key-value document store accessed over
// HTTP. The whole state object is read and replaced on every write:
// saving the flow merges it into the last-read top-level state rather
// than patching a field.
package agentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"flowdeck/domain/board"
	"flowdeck/domain/codegraph"
	pkgerrors "flowdeck/pkg/errors"

	"go.uber.org/zap"
)

// agentState mirrors the service's top-level state document. Unknown
// fields are carried through Extra so a state replacement never drops
// them.
type agentState struct {
	PromptFlow *board.Flow                `json:"promptFlow,omitempty"`
	Files      map[string]codegraph.File  `json:"files,omitempty"`
	Extra      map[string]json.RawMessage `json:"-"`
}

// Client talks to the external agent-state service
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates an agent-state client
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// LoadFlow reads agent.state.promptFlow, (nil, nil) when absent
func (c *Client) LoadFlow(ctx context.Context, agentID string) (*board.Flow, error) {
	state, err := c.getState(ctx, agentID)
	if err != nil {
		return nil, err
	}
	return state.PromptFlow, nil
}

// SaveFlow replaces the whole state document with promptFlow updated
func (c *Client) SaveFlow(ctx context.Context, agentID string, flow board.Flow) error {
	state, err := c.getState(ctx, agentID)
	if err != nil {
		return err
	}
	state.PromptFlow = &flow
	return c.putState(ctx, agentID, state)
}

// LoadFiles reads agent.state.files, empty when absent
func (c *Client) LoadFiles(ctx context.Context, agentID string) (map[string]codegraph.File, error) {
	state, err := c.getState(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if state.Files == nil {
		return map[string]codegraph.File{}, nil
	}
	return state.Files, nil
}

// SaveFiles replaces the whole state document with files updated
func (c *Client) SaveFiles(ctx context.Context, agentID string, files map[string]codegraph.File) error {
	state, err := c.getState(ctx, agentID)
	if err != nil {
		return err
	}
	state.Files = files
	return c.putState(ctx, agentID, state)
}

func (c *Client) stateURL(agentID string) string {
	return fmt.Sprintf("%s/agents/%s/state", c.baseURL, agentID)
}

func (c *Client) getState(ctx context.Context, agentID string) (agentState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.stateURL(agentID), nil)
	if err != nil {
		return agentState{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Agent state fetch failed",
			zap.String("agentID", agentID),
			zap.Error(err),
		)
		return agentState{}, pkgerrors.NewExternalError("agent state store", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return agentState{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return agentState{}, fmt.Errorf("fetch agent state: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return agentState{}, fmt.Errorf("read agent state response: %w", err)
	}

	var state agentState
	if err := json.Unmarshal(body, &state); err != nil {
		return agentState{}, fmt.Errorf("decode agent state: %w", err)
	}

	// Keep any fields this client does not model so the wholesale
	// replacement on save does not drop them.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err == nil {
		delete(raw, "promptFlow")
		delete(raw, "files")
		state.Extra = raw
	}
	return state, nil
}

func (c *Client) putState(ctx context.Context, agentID string, state agentState) error {
	doc := make(map[string]interface{}, len(state.Extra)+2)
	for k, v := range state.Extra {
		doc[k] = v
	}
	if state.PromptFlow != nil {
		doc["promptFlow"] = state.PromptFlow
	}
	if state.Files != nil {
		doc["files"] = state.Files
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode agent state: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.stateURL(agentID), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Agent state replace failed",
			zap.String("agentID", agentID),
			zap.Error(err),
		)
		return pkgerrors.NewExternalError("agent state store", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("replace agent state: unexpected status %d", resp.StatusCode)
	}
	return nil
}
