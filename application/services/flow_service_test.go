package services

import (
	"context"
	"testing"

	"flowdeck/domain/board"
	"flowdeck/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFlowService_GetDefaultsToAgentName(t *testing.T) {
	svc := NewFlowService(memory.NewStateStore(), "my-agent", zap.NewNop())

	flow, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "my-agent", flow.MainIdea)
	assert.Empty(t, flow.Tasks)
}

func TestFlowService_GetReturnsPersistedFlow(t *testing.T) {
	store := memory.NewStateStore()
	ctx := context.Background()
	saved := board.Flow{
		MainIdea: "ship it",
		Tasks:    []board.Task{{ID: "t1", Title: "one", Dependencies: []string{}}},
	}
	require.NoError(t, store.SaveFlow(ctx, "my-agent", saved))
	svc := NewFlowService(store, "my-agent", zap.NewNop())

	flow, err := svc.Get(ctx)

	require.NoError(t, err)
	assert.Equal(t, saved, flow)
}

func TestFlowService_ViewRendersNodesAndEdges(t *testing.T) {
	store := memory.NewStateStore()
	ctx := context.Background()
	saved := board.Flow{
		MainIdea: "ship it",
		Tasks: []board.Task{
			{ID: "t1", Title: "one", Status: board.StatusTodo, Dependencies: []string{}},
			{ID: "t2", Title: "two", Status: board.StatusDone, Dependencies: []string{"t1"}},
		},
	}
	require.NoError(t, store.SaveFlow(ctx, "my-agent", saved))
	svc := NewFlowService(store, "my-agent", zap.NewNop())

	view, err := svc.View(ctx)

	require.NoError(t, err)
	assert.Equal(t, "ship it", view.MainIdea)
	// Idea node plus one node per task.
	require.Len(t, view.Nodes, 3)
	assert.Equal(t, board.IdeaNodeID, view.Nodes[0].ID)
	// idea -> t1 (dependency-free) and t1 -> t2.
	require.Len(t, view.Edges, 2)
	assert.Equal(t, board.IdeaNodeID, view.Edges[0].Source)
	assert.Equal(t, "t1", view.Edges[1].Source)
}
