// Package board holds the task-board document model and the pure
// transforms that derive visual nodes/edges from it and mutate it safely.
// Every mutator is copy-on-write: it returns a new collection and never
// touches its input.
package board

// Category classifies what part of the agent a task belongs to
type Category string

const (
	CategoryCore    Category = "core"
	CategoryTools   Category = "tools"
	CategoryState   Category = "state"
	CategoryAPI     Category = "api"
	CategoryTesting Category = "testing"
)

// Status represents the kanban column a task sits in.
// Any status is reachable from any other; transitions are user-driven.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inProgress"
	StatusDone       Status = "done"
)

// TaskType distinguishes leaf tasks from group (parent) nodes.
// An empty type is treated as a plain task.
type TaskType string

const (
	TypeTask  TaskType = "task"
	TypeGroup TaskType = "group"
)

// Position is a 2D canvas coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Task is a single board item: a leaf task or a group that parents
// other tasks via their ParentID.
type Task struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Category     Category               `json:"category"`
	Status       Status                 `json:"status"`
	Dependencies []string               `json:"dependencies"`
	ParentID     string                 `json:"parentId,omitempty"`
	Type         TaskType               `json:"type,omitempty"`
	Style        map[string]interface{} `json:"style,omitempty"`
	Extent       string                 `json:"extent,omitempty"`
	Position     *Position              `json:"position,omitempty"`
}

// IsGroup reports whether the task is a group node
func (t Task) IsGroup() bool {
	return t.Type == TypeGroup
}

// IsRoot reports whether the task sits at the top level of the board
func (t Task) IsRoot() bool {
	return t.ParentID == ""
}

// Clone returns a deep copy of the task
func (t Task) Clone() Task {
	c := t
	if t.Dependencies != nil {
		c.Dependencies = make([]string, len(t.Dependencies))
		copy(c.Dependencies, t.Dependencies)
	}
	if t.Style != nil {
		c.Style = make(map[string]interface{}, len(t.Style))
		for k, v := range t.Style {
			c.Style[k] = v
		}
	}
	if t.Position != nil {
		p := *t.Position
		c.Position = &p
	}
	return c
}

// Flow is the whole task-board document. It is replaced atomically on
// every mutation; there is no field-level update path.
type Flow struct {
	MainIdea string `json:"mainIdea"`
	Tasks    []Task `json:"tasks"`
}

// NewFlow creates an empty flow document seeded with a main idea
func NewFlow(mainIdea string) Flow {
	return Flow{MainIdea: mainIdea, Tasks: []Task{}}
}

// Clone returns a deep copy of the flow document
func (f Flow) Clone() Flow {
	return Flow{MainIdea: f.MainIdea, Tasks: CloneTasks(f.Tasks)}
}

// CloneTasks deep-copies a task slice
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// FindTask returns the task with the given id, if present
func FindTask(tasks []Task, id string) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// ValidCategory reports whether s is one of the closed category values
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryCore, CategoryTools, CategoryState, CategoryAPI, CategoryTesting:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the closed status values
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// DefaultGroupStyle is the visual styling applied to newly created groups
func DefaultGroupStyle() map[string]interface{} {
	return map[string]interface{}{
		"width":           400,
		"height":          300,
		"backgroundColor": "rgba(59, 130, 246, 0.08)",
		"border":          "1px dashed rgb(59, 130, 246)",
		"borderRadius":    "8px",
	}
}
