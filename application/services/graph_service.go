// Package services provides the read-side views served over HTTP: the
// file dependency graph and the rendered board. Both are recomputed in
// full on every call: cheap at these sizes, and immune to
// incremental-update bugs.
package services

import (
	"context"

	"flowdeck/application/ports"
	"flowdeck/domain/codegraph"

	"go.uber.org/zap"
)

// GraphService builds the file dependency graph for an agent
type GraphService struct {
	store   ports.StateStore
	agentID string
	logger  *zap.Logger
}

// NewGraphService creates a graph service bound to one agent
func NewGraphService(store ports.StateStore, agentID string, logger *zap.Logger) *GraphService {
	return &GraphService{store: store, agentID: agentID, logger: logger}
}

// BuildGraph loads the agent's file set and derives nodes and edges
// from it. An empty or missing file set yields an empty graph, not an
// error.
func (s *GraphService) BuildGraph(ctx context.Context) (codegraph.Graph, error) {
	files, err := s.store.LoadFiles(ctx, s.agentID)
	if err != nil {
		s.logger.Error("Failed to load file set", zap.Error(err))
		return codegraph.Graph{}, err
	}

	graph := codegraph.Build(files)
	s.logger.Debug("Dependency graph built",
		zap.Int("files", len(files)),
		zap.Int("nodes", len(graph.Nodes)),
		zap.Int("edges", len(graph.Edges)),
	)
	return graph, nil
}
