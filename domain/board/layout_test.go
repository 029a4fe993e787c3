package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNodes_IdeaNodeAlwaysFirst(t *testing.T) {
	nodes := GenerateNodes(nil, "build an agent")

	require.Len(t, nodes, 1)
	assert.Equal(t, IdeaNodeID, nodes[0].ID)
	assert.Equal(t, "idea", nodes[0].Kind)
	assert.Equal(t, "build an agent", nodes[0].Label)
	assert.Equal(t, Position{X: ideaX, Y: ideaY}, nodes[0].Position)
}

func TestGenerateNodes_StatusColumns(t *testing.T) {
	tasks := []Task{
		{ID: "a", Title: "A", Status: StatusTodo},
		{ID: "b", Title: "B", Status: StatusInProgress},
		{ID: "c", Title: "C", Status: StatusDone},
	}

	nodes := GenerateNodes(tasks, "idea")

	require.Len(t, nodes, 4)
	assert.Equal(t, columnTodoX, nodes[1].Position.X)
	assert.Equal(t, columnInProgressX, nodes[2].Position.X)
	assert.Equal(t, columnDoneX, nodes[3].Position.X)
	// Rows stagger by index.
	assert.Equal(t, columnTopY, nodes[1].Position.Y)
	assert.Equal(t, columnTopY+rowSpacing, nodes[2].Position.Y)
	assert.Equal(t, columnTopY+2*rowSpacing, nodes[3].Position.Y)
}

func TestGenerateNodes_ExplicitPositionWins(t *testing.T) {
	tasks := []Task{
		{ID: "a", Title: "A", Status: StatusTodo, Position: &Position{X: 12, Y: 34}},
	}

	nodes := GenerateNodes(tasks, "idea")

	assert.Equal(t, Position{X: 12, Y: 34}, nodes[1].Position)
}

func TestGenerateNodes_GroupKind(t *testing.T) {
	tasks := []Task{
		{ID: "g", Title: "Group", Type: TypeGroup, Style: DefaultGroupStyle()},
		{ID: "c", Title: "Child", ParentID: "g", Extent: "parent"},
	}

	nodes := GenerateNodes(tasks, "idea")

	assert.Equal(t, "group", nodes[1].Kind)
	assert.NotNil(t, nodes[1].Style)
	assert.Equal(t, "task", nodes[2].Kind)
	assert.Equal(t, "g", nodes[2].ParentID)
	assert.Equal(t, "parent", nodes[2].Extent)
}

func TestGenerateNodes_RowsWrapAfterFive(t *testing.T) {
	tasks := make([]Task, 6)
	for i := range tasks {
		tasks[i] = Task{ID: string(rune('a' + i)), Status: StatusTodo}
	}

	nodes := GenerateNodes(tasks, "idea")

	// Sixth task wraps back to the top row.
	assert.Equal(t, columnTopY, nodes[6].Position.Y)
}

func TestGenerateEdges_IdeaConnectsDependencyFreeTasks(t *testing.T) {
	tasks := []Task{
		{ID: "a", Dependencies: []string{}},
		{ID: "b", Dependencies: []string{"a"}},
	}

	edges := GenerateEdges(tasks)

	require.Len(t, edges, 2)
	assert.Equal(t, FlowEdge{ID: "e-idea-a", Source: IdeaNodeID, Target: "a"}, edges[0])
	assert.Equal(t, FlowEdge{ID: "e-a-b", Source: "a", Target: "b"}, edges[1])
}

func TestGenerateEdges_OneEdgePerDependency(t *testing.T) {
	tasks := []Task{
		{ID: "c", Dependencies: []string{"a", "b"}},
	}

	edges := GenerateEdges(tasks)

	require.Len(t, edges, 2)
	assert.Equal(t, "a", edges[0].Source)
	assert.Equal(t, "b", edges[1].Source)
	assert.Equal(t, "c", edges[0].Target)
}

func TestGenerateEdges_Empty(t *testing.T) {
	assert.Empty(t, GenerateEdges(nil))
}
