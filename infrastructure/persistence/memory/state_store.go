// Package memory provides an in-memory StateStore, the default backend
// for development and tests. Documents are deep-copied on the way in
// and out so callers can never alias store-held state.
package memory

import (
	"context"
	"sync"

	"flowdeck/domain/board"
	"flowdeck/domain/codegraph"
)

// StateStore keeps per-agent state in process memory
type StateStore struct {
	mu    sync.RWMutex
	flows map[string]board.Flow
	files map[string]map[string]codegraph.File
}

// NewStateStore creates an empty in-memory state store
func NewStateStore() *StateStore {
	return &StateStore{
		flows: make(map[string]board.Flow),
		files: make(map[string]map[string]codegraph.File),
	}
}

// LoadFlow returns a copy of the agent's flow document, or (nil, nil)
// when none has been saved yet.
func (s *StateStore) LoadFlow(ctx context.Context, agentID string) (*board.Flow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flow, exists := s.flows[agentID]
	if !exists {
		return nil, nil
	}
	copied := flow.Clone()
	return &copied, nil
}

// SaveFlow replaces the agent's flow document wholesale
func (s *StateStore) SaveFlow(ctx context.Context, agentID string, flow board.Flow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flows[agentID] = flow.Clone()
	return nil
}

// LoadFiles returns a copy of the agent's file set
func (s *StateStore) LoadFiles(ctx context.Context, agentID string) (map[string]codegraph.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, exists := s.files[agentID]
	if !exists {
		return map[string]codegraph.File{}, nil
	}
	out := make(map[string]codegraph.File, len(stored))
	for path, f := range stored {
		out[path] = f
	}
	return out, nil
}

// SaveFiles replaces the agent's file set wholesale
func (s *StateStore) SaveFiles(ctx context.Context, agentID string, files map[string]codegraph.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(map[string]codegraph.File, len(files))
	for path, f := range files {
		copied[path] = f
	}
	s.files[agentID] = copied
	return nil
}
