package memory

import (
	"context"
	"testing"

	"flowdeck/domain/board"
	"flowdeck/domain/codegraph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_LoadFlowAbsent(t *testing.T) {
	store := NewStateStore()

	flow, err := store.LoadFlow(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Nil(t, flow)
}

func TestStateStore_SaveAndLoadFlow(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()
	flow := board.Flow{
		MainIdea: "build an agent",
		Tasks: []board.Task{
			{ID: "t1", Title: "one", Dependencies: []string{}},
		},
	}

	require.NoError(t, store.SaveFlow(ctx, "a1", flow))

	loaded, err := store.LoadFlow(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, flow, *loaded)
}

func TestStateStore_FlowCopiesDoNotAlias(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()
	flow := board.Flow{
		MainIdea: "idea",
		Tasks:    []board.Task{{ID: "t1", Title: "one", Dependencies: []string{"t0"}}},
	}
	require.NoError(t, store.SaveFlow(ctx, "a1", flow))

	// Mutating the original after save must not leak into the store.
	flow.Tasks[0].Title = "mutated"
	flow.Tasks[0].Dependencies[0] = "mutated"

	loaded, err := store.LoadFlow(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "one", loaded.Tasks[0].Title)
	assert.Equal(t, "t0", loaded.Tasks[0].Dependencies[0])

	// Mutating a loaded copy must not leak either.
	loaded.Tasks[0].Title = "mutated again"
	reloaded, err := store.LoadFlow(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "one", reloaded.Tasks[0].Title)
}

func TestStateStore_FlowsAreScopedPerAgent(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()
	require.NoError(t, store.SaveFlow(ctx, "a1", board.NewFlow("first")))
	require.NoError(t, store.SaveFlow(ctx, "a2", board.NewFlow("second")))

	f1, err := store.LoadFlow(ctx, "a1")
	require.NoError(t, err)
	f2, err := store.LoadFlow(ctx, "a2")
	require.NoError(t, err)

	assert.Equal(t, "first", f1.MainIdea)
	assert.Equal(t, "second", f2.MainIdea)
}

func TestStateStore_LoadFilesAbsentReturnsEmptyMap(t *testing.T) {
	store := NewStateStore()

	files, err := store.LoadFiles(context.Background(), "nobody")

	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestStateStore_SaveAndLoadFiles(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()
	files := map[string]codegraph.File{
		"src/a.ts": {Path: "src/a.ts", Content: "export {}"},
	}

	require.NoError(t, store.SaveFiles(ctx, "a1", files))

	loaded, err := store.LoadFiles(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, files, loaded)

	// The returned map is a copy.
	delete(loaded, "src/a.ts")
	reloaded, err := store.LoadFiles(ctx, "a1")
	require.NoError(t, err)
	assert.Len(t, reloaded, 1)
}
