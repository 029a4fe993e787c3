package board

// IdeaNodeID is the id of the fixed node representing the main idea
const IdeaNodeID = "idea"

// Column x-coordinates per status and the vertical stagger used by
// GenerateNodes. The layout is deliberately simple: five rows per
// column, after which nodes overlap. That is acceptable for the board
// sizes this model is built for.
const (
	ideaX = 400.0
	ideaY = 40.0

	columnTodoX       = 100.0
	columnInProgressX = 400.0
	columnDoneX       = 700.0

	columnTopY     = 180.0
	rowSpacing     = 120.0
	rowsPerColumn  = 5
	columnFallback = columnTodoX
)

// FlowNode is a renderable board node, either the idea node or one
// node per task.
type FlowNode struct {
	ID       string                 `json:"id"`
	Kind     string                 `json:"kind"` // "idea", "task" or "group"
	Label    string                 `json:"label"`
	Status   Status                 `json:"status,omitempty"`
	Category Category               `json:"category,omitempty"`
	ParentID string                 `json:"parentId,omitempty"`
	Extent   string                 `json:"extent,omitempty"`
	Style    map[string]interface{} `json:"style,omitempty"`
	Position Position               `json:"position"`
}

// FlowEdge is a renderable board edge
type FlowEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// GenerateNodes derives the visual node set for a task list: one fixed
// idea node plus one node per task. Task x-positions are bucketed by
// status into three columns; y-positions stagger by index modulo five
// within the column. Tasks carrying an explicit position keep it.
func GenerateNodes(tasks []Task, mainIdea string) []FlowNode {
	nodes := make([]FlowNode, 0, len(tasks)+1)
	nodes = append(nodes, FlowNode{
		ID:       IdeaNodeID,
		Kind:     "idea",
		Label:    mainIdea,
		Position: Position{X: ideaX, Y: ideaY},
	})

	for i, t := range tasks {
		node := FlowNode{
			ID:       t.ID,
			Kind:     "task",
			Label:    t.Title,
			Status:   t.Status,
			Category: t.Category,
			ParentID: t.ParentID,
			Extent:   t.Extent,
			Style:    t.Style,
		}
		if t.IsGroup() {
			node.Kind = "group"
		}
		if t.Position != nil {
			node.Position = *t.Position
		} else {
			node.Position = Position{
				X: statusColumnX(t.Status),
				Y: columnTopY + float64(i%rowsPerColumn)*rowSpacing,
			}
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// GenerateEdges derives the visual edge set for a task list: the idea
// node connects to every dependency-free task, and every dependency
// pair yields one edge.
func GenerateEdges(tasks []Task) []FlowEdge {
	edges := make([]FlowEdge, 0, len(tasks))
	for _, t := range tasks {
		if len(t.Dependencies) == 0 {
			edges = append(edges, FlowEdge{
				ID:     "e-" + IdeaNodeID + "-" + t.ID,
				Source: IdeaNodeID,
				Target: t.ID,
			})
			continue
		}
		for _, dep := range t.Dependencies {
			edges = append(edges, FlowEdge{
				ID:     "e-" + dep + "-" + t.ID,
				Source: dep,
				Target: t.ID,
			})
		}
	}
	return edges
}

func statusColumnX(s Status) float64 {
	switch s {
	case StatusTodo:
		return columnTodoX
	case StatusInProgress:
		return columnInProgressX
	case StatusDone:
		return columnDoneX
	}
	return columnFallback
}
