package events

import "time"

// TaskAdded is raised when a task is appended to the board
type TaskAdded struct {
	BaseEvent
	TaskID   string `json:"task_id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	ParentID string `json:"parent_id,omitempty"`
}

// NewTaskAdded creates a TaskAdded event
func NewTaskAdded(taskID, title, category, parentID string, at time.Time) TaskAdded {
	return TaskAdded{
		BaseEvent: newBase(taskID, "board.task_added", at),
		TaskID:    taskID,
		Title:     title,
		Category:  category,
		ParentID:  parentID,
	}
}

// TaskUpdated is raised when task fields are replaced
type TaskUpdated struct {
	BaseEvent
	TaskID string `json:"task_id"`
}

// NewTaskUpdated creates a TaskUpdated event
func NewTaskUpdated(taskID string, at time.Time) TaskUpdated {
	return TaskUpdated{
		BaseEvent: newBase(taskID, "board.task_updated", at),
		TaskID:    taskID,
	}
}

// TaskStatusChanged is raised when a task moves between columns
type TaskStatusChanged struct {
	BaseEvent
	TaskID    string `json:"task_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// NewTaskStatusChanged creates a TaskStatusChanged event
func NewTaskStatusChanged(taskID, oldStatus, newStatus string, at time.Time) TaskStatusChanged {
	return TaskStatusChanged{
		BaseEvent: newBase(taskID, "board.task_status_changed", at),
		TaskID:    taskID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	}
}

// TaskDeleted is raised when a task is removed. CascadedIDs lists the
// direct children removed along with it.
type TaskDeleted struct {
	BaseEvent
	TaskID      string   `json:"task_id"`
	CascadedIDs []string `json:"cascaded_ids,omitempty"`
}

// NewTaskDeleted creates a TaskDeleted event
func NewTaskDeleted(taskID string, cascadedIDs []string, at time.Time) TaskDeleted {
	return TaskDeleted{
		BaseEvent:   newBase(taskID, "board.task_deleted", at),
		TaskID:      taskID,
		CascadedIDs: cascadedIDs,
	}
}

// GroupAdded is raised when a group node is created
type GroupAdded struct {
	BaseEvent
	GroupID string `json:"group_id"`
	Title   string `json:"title"`
}

// NewGroupAdded creates a GroupAdded event
func NewGroupAdded(groupID, title string, at time.Time) GroupAdded {
	return GroupAdded{
		BaseEvent: newBase(groupID, "board.group_added", at),
		GroupID:   groupID,
		Title:     title,
	}
}

// TaskMoved is raised when a task's canvas position changes
type TaskMoved struct {
	BaseEvent
	TaskID string  `json:"task_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// NewTaskMoved creates a TaskMoved event
func NewTaskMoved(taskID string, x, y float64, at time.Time) TaskMoved {
	return TaskMoved{
		BaseEvent: newBase(taskID, "board.task_moved", at),
		TaskID:    taskID,
		X:         x,
		Y:         y,
	}
}
