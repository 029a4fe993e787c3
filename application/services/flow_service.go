package services

import (
	"context"

	"flowdeck/application/ports"
	"flowdeck/domain/board"

	"go.uber.org/zap"
)

// BoardView is the rendered form of the flow document
type BoardView struct {
	MainIdea string           `json:"mainIdea"`
	Nodes    []board.FlowNode `json:"nodes"`
	Edges    []board.FlowEdge `json:"edges"`
}

// FlowService reads the flow document and derives its visual form
type FlowService struct {
	store   ports.StateStore
	agentID string
	logger  *zap.Logger
}

// NewFlowService creates a flow service bound to one agent
func NewFlowService(store ports.StateStore, agentID string, logger *zap.Logger) *FlowService {
	return &FlowService{store: store, agentID: agentID, logger: logger}
}

// Get returns the current flow document, defaulting to an empty flow
// named after the agent when none has been created yet.
func (s *FlowService) Get(ctx context.Context) (board.Flow, error) {
	flow, err := s.store.LoadFlow(ctx, s.agentID)
	if err != nil {
		return board.Flow{}, err
	}
	if flow == nil {
		return board.NewFlow(s.agentID), nil
	}
	return *flow, nil
}

// View returns the node/edge rendering of the current flow
func (s *FlowService) View(ctx context.Context) (BoardView, error) {
	flow, err := s.Get(ctx)
	if err != nil {
		s.logger.Error("Failed to load prompt flow", zap.Error(err))
		return BoardView{}, err
	}
	return BoardView{
		MainIdea: flow.MainIdea,
		Nodes:    board.GenerateNodes(flow.Tasks, flow.MainIdea),
		Edges:    board.GenerateEdges(flow.Tasks),
	}, nil
}
