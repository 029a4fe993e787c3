package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"flowdeck/domain/board"
	"flowdeck/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAgent = "test-agent"

// newTestTools builds a FlowTools instance over the in-memory store
// with deterministic ids ("id-1", "id-2", ...).
func newTestTools(t *testing.T) (*FlowTools, *memory.StateStore) {
	t.Helper()
	store := memory.NewStateStore()
	ft := NewFlowTools(store, nil, testAgent, zap.NewNop())
	n := 0
	ft.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return ft, store
}

func raw(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func storedFlow(t *testing.T, store *memory.StateStore) board.Flow {
	t.Helper()
	flow, err := store.LoadFlow(context.Background(), testAgent)
	require.NoError(t, err)
	require.NotNil(t, flow)
	return *flow
}

func TestGetPromptFlow_LazyDefault(t *testing.T) {
	ft, store := newTestTools(t)

	res := ft.GetPromptFlow(context.Background(), nil)

	require.True(t, res.Success)
	require.NotNil(t, res.Flow)
	assert.Equal(t, testAgent, res.Flow.MainIdea)
	assert.Empty(t, res.Flow.Tasks)

	// The default is not persisted until a mutation happens.
	persisted, err := store.LoadFlow(context.Background(), testAgent)
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestAddTask_PersistsAndReturnsID(t *testing.T) {
	ft, store := newTestTools(t)

	res := ft.AddTask(context.Background(), raw(t, map[string]interface{}{
		"title":    "Wire the store",
		"category": "state",
	}))

	require.True(t, res.Success, res.Message)
	assert.Equal(t, "id-1", res.TaskID)

	flow := storedFlow(t, store)
	require.Len(t, flow.Tasks, 1)
	assert.Equal(t, "Wire the store", flow.Tasks[0].Title)
	assert.Equal(t, board.CategoryState, flow.Tasks[0].Category)
	// Status defaults to todo when omitted.
	assert.Equal(t, board.StatusTodo, flow.Tasks[0].Status)
}

func TestAddTask_RejectsUnknownCategory(t *testing.T) {
	ft, store := newTestTools(t)

	res := ft.AddTask(context.Background(), raw(t, map[string]interface{}{
		"title":    "Bad",
		"category": "frontend",
	}))

	assert.False(t, res.Success)
	persisted, err := store.LoadFlow(context.Background(), testAgent)
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestAddTask_RejectsMissingTitle(t *testing.T) {
	ft, _ := newTestTools(t)

	res := ft.AddTask(context.Background(), raw(t, map[string]interface{}{
		"category": "core",
	}))

	assert.False(t, res.Success)
}

func TestUpdatePromptFlow_ReplacesDocument(t *testing.T) {
	ft, store := newTestTools(t)
	ft.AddTask(context.Background(), raw(t, map[string]interface{}{
		"title": "old", "category": "core",
	}))

	res := ft.UpdatePromptFlow(context.Background(), raw(t, map[string]interface{}{
		"mainIdea": "new idea",
		"tasks": []map[string]interface{}{
			{"id": "a", "title": "A", "category": "api", "status": "done"},
			{"id": "b", "title": "B", "category": "core", "status": "todo", "dependencies": []string{"a"}},
		},
	}))

	require.True(t, res.Success, res.Message)
	flow := storedFlow(t, store)
	assert.Equal(t, "new idea", flow.MainIdea)
	require.Len(t, flow.Tasks, 2)
	assert.Equal(t, "a", flow.Tasks[0].ID)
	assert.Equal(t, []string{"a"}, flow.Tasks[1].Dependencies)
}

func TestUpdatePromptFlow_EmptyMainIdeaKeepsExisting(t *testing.T) {
	ft, store := newTestTools(t)
	ft.AddTask(context.Background(), raw(t, map[string]interface{}{
		"title": "seed", "category": "core",
	}))

	res := ft.UpdatePromptFlow(context.Background(), raw(t, map[string]interface{}{
		"tasks": []map[string]interface{}{},
	}))

	require.True(t, res.Success, res.Message)
	flow := storedFlow(t, store)
	assert.Equal(t, testAgent, flow.MainIdea)
	assert.Empty(t, flow.Tasks)
}

func TestUpdateTask_PartialUpdate(t *testing.T) {
	ft, store := newTestTools(t)
	ft.AddTask(context.Background(), raw(t, map[string]interface{}{
		"title": "original", "category": "core", "description": "keep me",
	}))

	res := ft.UpdateTask(context.Background(), raw(t, map[string]interface{}{
		"id":     "id-1",
		"title":  "renamed",
		"status": "inProgress",
	}))

	require.True(t, res.Success, res.Message)
	flow := storedFlow(t, store)
	assert.Equal(t, "renamed", flow.Tasks[0].Title)
	assert.Equal(t, board.StatusInProgress, flow.Tasks[0].Status)
	assert.Equal(t, "keep me", flow.Tasks[0].Description)
}

func TestUpdateTask_NotFound(t *testing.T) {
	ft, _ := newTestTools(t)

	res := ft.UpdateTask(context.Background(), raw(t, map[string]interface{}{
		"id": "ghost", "title": "x",
	}))

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "not found")
}

func TestChangeTaskStatus(t *testing.T) {
	ft, store := newTestTools(t)
	ft.AddTask(context.Background(), raw(t, map[string]interface{}{
		"title": "move me", "category": "core",
	}))

	res := ft.ChangeTaskStatus(context.Background(), raw(t, map[string]interface{}{
		"id": "id-1", "status": "done",
	}))

	require.True(t, res.Success, res.Message)
	flow := storedFlow(t, store)
	assert.Equal(t, board.StatusDone, flow.Tasks[0].Status)
}

func TestChangeTaskStatus_RejectsUnknownStatus(t *testing.T) {
	ft, _ := newTestTools(t)

	res := ft.ChangeTaskStatus(context.Background(), raw(t, map[string]interface{}{
		"id": "id-1", "status": "blocked",
	}))

	assert.False(t, res.Success)
}

func TestChangeTaskStatus_NotFound(t *testing.T) {
	ft, _ := newTestTools(t)

	res := ft.ChangeTaskStatus(context.Background(), raw(t, map[string]interface{}{
		"id": "ghost", "status": "done",
	}))

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "not found")
}

func TestDeleteTask_CascadesToGroupChildren(t *testing.T) {
	ft, store := newTestTools(t)
	ft.AddGroup(context.Background(), raw(t, map[string]interface{}{
		"title": "Group",
	})) // id-1
	ft.AddTaskToGroup(context.Background(), raw(t, map[string]interface{}{
		"groupId": "id-1", "title": "child one", "category": "core",
	})) // id-2
	ft.AddTaskToGroup(context.Background(), raw(t, map[string]interface{}{
		"groupId": "id-1", "title": "child two", "category": "core",
	})) // id-3

	res := ft.DeleteTask(context.Background(), raw(t, map[string]interface{}{
		"id": "id-1",
	}))

	require.True(t, res.Success, res.Message)
	assert.Contains(t, res.Message, "2 children")
	flow := storedFlow(t, store)
	assert.Empty(t, flow.Tasks)
}

func TestDeleteTask_NotFound(t *testing.T) {
	ft, _ := newTestTools(t)

	res := ft.DeleteTask(context.Background(), raw(t, map[string]interface{}{
		"id": "ghost",
	}))

	assert.False(t, res.Success)
}

func TestGetTask(t *testing.T) {
	ft, _ := newTestTools(t)
	ft.AddTask(context.Background(), raw(t, map[string]interface{}{
		"title": "find me", "category": "tools",
	}))

	res := ft.GetTask(context.Background(), raw(t, map[string]interface{}{
		"id": "id-1",
	}))

	require.True(t, res.Success, res.Message)
	require.NotNil(t, res.Task)
	assert.Equal(t, "find me", res.Task.Title)
}

func TestAddGroup_DefaultsAndStyle(t *testing.T) {
	ft, store := newTestTools(t)

	res := ft.AddGroup(context.Background(), raw(t, map[string]interface{}{
		"title": "Infra",
	}))

	require.True(t, res.Success, res.Message)
	flow := storedFlow(t, store)
	require.Len(t, flow.Tasks, 1)
	group := flow.Tasks[0]
	assert.True(t, group.IsGroup())
	assert.Equal(t, board.CategoryCore, group.Category)
	assert.Equal(t, board.StatusTodo, group.Status)
	assert.NotEmpty(t, group.Style)
}

func TestAddTaskToGroup_PositionsChildrenInOrder(t *testing.T) {
	ft, store := newTestTools(t)
	ft.AddGroup(context.Background(), raw(t, map[string]interface{}{
		"title": "Group",
	}))

	ft.AddTaskToGroup(context.Background(), raw(t, map[string]interface{}{
		"groupId": "id-1", "title": "first", "category": "core",
	}))
	ft.AddTaskToGroup(context.Background(), raw(t, map[string]interface{}{
		"groupId": "id-1", "title": "second", "category": "core",
	}))

	flow := storedFlow(t, store)
	require.Len(t, flow.Tasks, 3)
	first, second := flow.Tasks[1], flow.Tasks[2]
	assert.Equal(t, "id-1", first.ParentID)
	assert.Equal(t, "parent", first.Extent)
	require.NotNil(t, first.Position)
	require.NotNil(t, second.Position)
	assert.Equal(t, board.Position{X: 20, Y: 50}, *first.Position)
	assert.Equal(t, board.Position{X: 20, Y: 120}, *second.Position)
}

func TestAddTaskToGroup_RejectsNonGroupParent(t *testing.T) {
	ft, _ := newTestTools(t)
	ft.AddTask(context.Background(), raw(t, map[string]interface{}{
		"title": "leaf", "category": "core",
	}))

	res := ft.AddTaskToGroup(context.Background(), raw(t, map[string]interface{}{
		"groupId": "id-1", "title": "child", "category": "core",
	}))

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "not a group")
}

func TestUpdateTaskPosition(t *testing.T) {
	ft, store := newTestTools(t)
	ft.AddTask(context.Background(), raw(t, map[string]interface{}{
		"title": "move", "category": "core",
	}))

	res := ft.UpdateTaskPosition(context.Background(), raw(t, map[string]interface{}{
		"id": "id-1", "position": map[string]float64{"x": 150, "y": 300},
	}))

	require.True(t, res.Success, res.Message)
	flow := storedFlow(t, store)
	require.NotNil(t, flow.Tasks[0].Position)
	assert.Equal(t, board.Position{X: 150, Y: 300}, *flow.Tasks[0].Position)
}

func TestUpdateTaskPosition_RequiresPosition(t *testing.T) {
	ft, _ := newTestTools(t)

	res := ft.UpdateTaskPosition(context.Background(), raw(t, map[string]interface{}{
		"id": "id-1",
	}))

	assert.False(t, res.Success)
}

func TestUpdateTaskPositions_PartialApply(t *testing.T) {
	ft, store := newTestTools(t)
	ft.AddTask(context.Background(), raw(t, map[string]interface{}{
		"title": "a", "category": "core",
	}))

	res := ft.UpdateTaskPositions(context.Background(), raw(t, map[string]interface{}{
		"positions": []map[string]interface{}{
			{"id": "id-1", "position": map[string]float64{"x": 1, "y": 2}},
			{"id": "ghost", "position": map[string]float64{"x": 3, "y": 4}},
		},
	}))

	require.True(t, res.Success, res.Message)
	assert.Equal(t, 1, res.Updated)
	flow := storedFlow(t, store)
	assert.Equal(t, board.Position{X: 1, Y: 2}, *flow.Tasks[0].Position)
}

func TestUpdateTaskPositions_RejectsEmptyBatch(t *testing.T) {
	ft, _ := newTestTools(t)

	res := ft.UpdateTaskPositions(context.Background(), raw(t, map[string]interface{}{
		"positions": []map[string]interface{}{},
	}))

	assert.False(t, res.Success)
}

func TestDecodeParams_MalformedJSON(t *testing.T) {
	ft, _ := newTestTools(t)

	res := ft.AddTask(context.Background(), json.RawMessage(`{"title": `))

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "invalid parameters")
}
