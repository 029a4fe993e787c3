package tools

import "flowdeck/domain/board"

// Parameter shapes for each tool. Closed enums (category, status, type)
// are validated here, at the tool boundary, before any state is read or
// mutated.

// TaskParam is a full task as supplied by the caller, used by the
// wholesale updatePromptFlow replacement.
type TaskParam struct {
	ID           string                 `json:"id" validate:"required"`
	Title        string                 `json:"title" validate:"required,max=200"`
	Description  string                 `json:"description"`
	Category     string                 `json:"category" validate:"required,oneof=core tools state api testing"`
	Status       string                 `json:"status" validate:"required,oneof=todo inProgress done"`
	Dependencies []string               `json:"dependencies"`
	ParentID     string                 `json:"parentId"`
	Type         string                 `json:"type" validate:"omitempty,oneof=task group"`
	Style        map[string]interface{} `json:"style"`
	Extent       string                 `json:"extent" validate:"omitempty,oneof=parent"`
	Position     *board.Position        `json:"position"`
}

func (p TaskParam) toTask() board.Task {
	deps := p.Dependencies
	if deps == nil {
		deps = []string{}
	}
	return board.Task{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     board.Category(p.Category),
		Status:       board.Status(p.Status),
		Dependencies: deps,
		ParentID:     p.ParentID,
		Type:         board.TaskType(p.Type),
		Style:        p.Style,
		Extent:       p.Extent,
		Position:     p.Position,
	}
}

// UpdateFlowParams replaces the whole document
type UpdateFlowParams struct {
	MainIdea string      `json:"mainIdea"`
	Tasks    []TaskParam `json:"tasks" validate:"dive"`
}

// AddTaskParams appends one task
type AddTaskParams struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"required,oneof=core tools state api testing"`
	Status       string   `json:"status" validate:"omitempty,oneof=todo inProgress done"`
	Dependencies []string `json:"dependencies"`
}

// UpdateTaskParams replaces fields of one task; nil fields are untouched
type UpdateTaskParams struct {
	ID           string    `json:"id" validate:"required"`
	Title        *string   `json:"title" validate:"omitempty,max=200"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category" validate:"omitempty,oneof=core tools state api testing"`
	Status       *string   `json:"status" validate:"omitempty,oneof=todo inProgress done"`
	Dependencies *[]string `json:"dependencies"`
}

// ChangeStatusParams moves a task between columns
type ChangeStatusParams struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=todo inProgress done"`
}

// TaskIDParams addresses one task by id
type TaskIDParams struct {
	ID string `json:"id" validate:"required"`
}

// AddGroupParams creates a group node
type AddGroupParams struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

// AddTaskToGroupParams appends a task inside an existing group
type AddTaskToGroupParams struct {
	GroupID      string   `json:"groupId" validate:"required"`
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"required,oneof=core tools state api testing"`
	Status       string   `json:"status" validate:"omitempty,oneof=todo inProgress done"`
	Dependencies []string `json:"dependencies"`
}

// UpdatePositionParams moves one task on the canvas
type UpdatePositionParams struct {
	ID       string          `json:"id" validate:"required"`
	Position *board.Position `json:"position" validate:"required"`
}

// UpdatePositionsParams moves several tasks at once
type UpdatePositionsParams struct {
	Positions []UpdatePositionParams `json:"positions" validate:"required,min=1,dive"`
}
