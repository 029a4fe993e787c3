package tools

import (
	"context"
	"encoding/json"
	"time"

	"flowdeck/application/ports"
	"flowdeck/domain/board"
	"flowdeck/domain/events"
	"flowdeck/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Tool names as invoked through POST /api/agent/tool
const (
	ToolGetPromptFlow       = "getPromptFlow"
	ToolUpdatePromptFlow    = "updatePromptFlow"
	ToolAddTask             = "addTaskToPromptFlow"
	ToolUpdateTask          = "updateTaskInPromptFlow"
	ToolChangeTaskStatus    = "changeTaskStatus"
	ToolDeleteTask          = "deleteTaskFromPromptFlow"
	ToolGetTask             = "getTaskFromPromptFlow"
	ToolAddGroup            = "addGroupToPromptFlow"
	ToolAddTaskToGroup      = "addTaskToGroup"
	ToolUpdateTaskPosition  = "updateTaskPosition"
	ToolUpdateTaskPositions = "updateMultipleTaskPositions"
)

// FlowTools implements the task-board tools against a state store.
// Every tool loads the full flow document, applies a pure board
// transform, and writes the whole document back; the store is an
// explicit handle, not ambient state.
type FlowTools struct {
	store     ports.StateStore
	publisher ports.EventPublisher
	agentID   string
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// NewFlowTools creates the tool set for one agent
func NewFlowTools(store ports.StateStore, publisher ports.EventPublisher, agentID string, logger *zap.Logger) *FlowTools {
	return &FlowTools{
		store:     store,
		publisher: publisher,
		agentID:   agentID,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// RegisterAll wires every flow tool into the registry
func (t *FlowTools) RegisterAll(reg *Registry) error {
	handlers := map[string]Handler{
		ToolGetPromptFlow:       t.GetPromptFlow,
		ToolUpdatePromptFlow:    t.UpdatePromptFlow,
		ToolAddTask:             t.AddTask,
		ToolUpdateTask:          t.UpdateTask,
		ToolChangeTaskStatus:    t.ChangeTaskStatus,
		ToolDeleteTask:          t.DeleteTask,
		ToolGetTask:             t.GetTask,
		ToolAddGroup:            t.AddGroup,
		ToolAddTaskToGroup:      t.AddTaskToGroup,
		ToolUpdateTaskPosition:  t.UpdateTaskPosition,
		ToolUpdateTaskPositions: t.UpdateTaskPositions,
	}
	for name, h := range handlers {
		if err := reg.Register(name, h); err != nil {
			return err
		}
	}
	return nil
}

// loadFlow fetches the current document, defaulting lazily to an empty
// flow named after the agent when none exists yet.
func (t *FlowTools) loadFlow(ctx context.Context) (board.Flow, error) {
	flow, err := t.store.LoadFlow(ctx, t.agentID)
	if err != nil {
		return board.Flow{}, err
	}
	if flow == nil {
		return board.NewFlow(t.agentID), nil
	}
	return *flow, nil
}

func (t *FlowTools) saveFlow(ctx context.Context, flow board.Flow) error {
	return t.store.SaveFlow(ctx, t.agentID, flow)
}

// publish sends a domain event best-effort; failures are logged and
// never fail the mutation that raised the event.
func (t *FlowTools) publish(ctx context.Context, event events.DomainEvent) {
	if t.publisher == nil {
		return
	}
	if err := t.publisher.Publish(ctx, event); err != nil {
		t.logger.Warn("Failed to publish board event",
			zap.String("eventType", event.GetEventType()),
			zap.Error(err),
		)
	}
}

// GetPromptFlow returns the current flow document
func (t *FlowTools) GetPromptFlow(ctx context.Context, _ json.RawMessage) Result {
	flow, err := t.loadFlow(ctx)
	if err != nil {
		t.logger.Error("Failed to load prompt flow", zap.Error(err))
		return failure("failed to load prompt flow: %v", err)
	}
	res := success("prompt flow retrieved")
	res.Flow = &flow
	return res
}

// UpdatePromptFlow replaces the whole document
func (t *FlowTools) UpdatePromptFlow(ctx context.Context, params json.RawMessage) Result {
	var p UpdateFlowParams
	if res, ok := decodeParams(params, &p); !ok {
		return res
	}

	flow, err := t.loadFlow(ctx)
	if err != nil {
		return failure("failed to load prompt flow: %v", err)
	}

	if p.MainIdea != "" {
		flow.MainIdea = p.MainIdea
	}
	flow.Tasks = make([]board.Task, 0, len(p.Tasks))
	for _, tp := range p.Tasks {
		flow.Tasks = append(flow.Tasks, tp.toTask())
	}

	if err := t.saveFlow(ctx, flow); err != nil {
		return failure("failed to save prompt flow: %v", err)
	}
	res := success("prompt flow updated with %d tasks", len(flow.Tasks))
	res.Flow = &flow
	return res
}

// AddTask appends a root-level task
func (t *FlowTools) AddTask(ctx context.Context, params json.RawMessage) Result {
	var p AddTaskParams
	if res, ok := decodeParams(params, &p); !ok {
		return res
	}

	flow, err := t.loadFlow(ctx)
	if err != nil {
		return failure("failed to load prompt flow: %v", err)
	}

	task := board.Task{
		ID:           t.newID(),
		Title:        p.Title,
		Description:  p.Description,
		Category:     board.Category(p.Category),
		Status:       defaultStatus(p.Status),
		Dependencies: p.Dependencies,
	}
	flow.Tasks = board.AddTask(flow.Tasks, task)

	if err := t.saveFlow(ctx, flow); err != nil {
		return failure("failed to save prompt flow: %v", err)
	}
	t.publish(ctx, events.NewTaskAdded(task.ID, task.Title, p.Category, "", t.now()))

	res := success("task %q added", p.Title)
	res.TaskID = task.ID
	return res
}

// UpdateTask replaces fields of an existing task
func (t *FlowTools) UpdateTask(ctx context.Context, params json.RawMessage) Result {
	var p UpdateTaskParams
	if res, ok := decodeParams(params, &p); !ok {
		return res
	}

	flow, err := t.loadFlow(ctx)
	if err != nil {
		return failure("failed to load prompt flow: %v", err)
	}

	upd := board.TaskUpdate{
		Title:        p.Title,
		Description:  p.Description,
		Dependencies: p.Dependencies,
	}
	if p.Category != nil {
		c := board.Category(*p.Category)
		upd.Category = &c
	}
	if p.Status != nil {
		s := board.Status(*p.Status)
		upd.Status = &s
	}

	updated, found := board.UpdateTask(flow.Tasks, p.ID, upd)
	if !found {
		return failure("task %s not found", p.ID)
	}
	flow.Tasks = updated

	if err := t.saveFlow(ctx, flow); err != nil {
		return failure("failed to save prompt flow: %v", err)
	}
	t.publish(ctx, events.NewTaskUpdated(p.ID, t.now()))
	return success("task %s updated", p.ID)
}

// ChangeTaskStatus moves a task to another column
func (t *FlowTools) ChangeTaskStatus(ctx context.Context, params json.RawMessage) Result {
	var p ChangeStatusParams
	if res, ok := decodeParams(params, &p); !ok {
		return res
	}

	flow, err := t.loadFlow(ctx)
	if err != nil {
		return failure("failed to load prompt flow: %v", err)
	}

	existing, found := board.FindTask(flow.Tasks, p.ID)
	if !found {
		return failure("task %s not found", p.ID)
	}
	flow.Tasks = board.UpdateStatus(flow.Tasks, p.ID, board.Status(p.Status))

	if err := t.saveFlow(ctx, flow); err != nil {
		return failure("failed to save prompt flow: %v", err)
	}
	t.publish(ctx, events.NewTaskStatusChanged(p.ID, string(existing.Status), p.Status, t.now()))
	return success("task %s moved to %s", p.ID, p.Status)
}

// DeleteTask removes a task, cascading to its direct children
func (t *FlowTools) DeleteTask(ctx context.Context, params json.RawMessage) Result {
	var p TaskIDParams
	if res, ok := decodeParams(params, &p); !ok {
		return res
	}

	flow, err := t.loadFlow(ctx)
	if err != nil {
		return failure("failed to load prompt flow: %v", err)
	}

	var cascaded []string
	for _, task := range flow.Tasks {
		if task.ParentID == p.ID {
			cascaded = append(cascaded, task.ID)
		}
	}

	remaining, found := board.DeleteTask(flow.Tasks, p.ID)
	if !found {
		return failure("task %s not found", p.ID)
	}
	flow.Tasks = remaining

	if err := t.saveFlow(ctx, flow); err != nil {
		return failure("failed to save prompt flow: %v", err)
	}
	t.publish(ctx, events.NewTaskDeleted(p.ID, cascaded, t.now()))

	if len(cascaded) > 0 {
		return success("task %s deleted along with %d children", p.ID, len(cascaded))
	}
	return success("task %s deleted", p.ID)
}

// GetTask returns one task by id
func (t *FlowTools) GetTask(ctx context.Context, params json.RawMessage) Result {
	var p TaskIDParams
	if res, ok := decodeParams(params, &p); !ok {
		return res
	}

	flow, err := t.loadFlow(ctx)
	if err != nil {
		return failure("failed to load prompt flow: %v", err)
	}

	task, found := board.FindTask(flow.Tasks, p.ID)
	if !found {
		return failure("task %s not found", p.ID)
	}
	res := success("task retrieved")
	res.Task = &task
	return res
}

// AddGroup creates a group node that other tasks can be parented to
func (t *FlowTools) AddGroup(ctx context.Context, params json.RawMessage) Result {
	var p AddGroupParams
	if res, ok := decodeParams(params, &p); !ok {
		return res
	}

	flow, err := t.loadFlow(ctx)
	if err != nil {
		return failure("failed to load prompt flow: %v", err)
	}

	group := board.Task{
		ID:           t.newID(),
		Title:        p.Title,
		Description:  p.Description,
		Category:     board.CategoryCore,
		Status:       board.StatusTodo,
		Dependencies: []string{},
		Type:         board.TypeGroup,
		Style:        board.DefaultGroupStyle(),
	}
	flow.Tasks = board.AddTask(flow.Tasks, group)

	if err := t.saveFlow(ctx, flow); err != nil {
		return failure("failed to save prompt flow: %v", err)
	}
	t.publish(ctx, events.NewGroupAdded(group.ID, group.Title, t.now()))

	res := success("group %q added", p.Title)
	res.TaskID = group.ID
	return res
}

// AddTaskToGroup appends a task inside an existing group
func (t *FlowTools) AddTaskToGroup(ctx context.Context, params json.RawMessage) Result {
	var p AddTaskToGroupParams
	if res, ok := decodeParams(params, &p); !ok {
		return res
	}

	flow, err := t.loadFlow(ctx)
	if err != nil {
		return failure("failed to load prompt flow: %v", err)
	}

	group, found := board.FindTask(flow.Tasks, p.GroupID)
	if !found {
		return failure("group %s not found", p.GroupID)
	}
	if !group.IsGroup() {
		return failure("task %s is not a group", p.GroupID)
	}

	// Children are positioned relative to the group and clipped to it.
	childCount := 0
	for _, task := range flow.Tasks {
		if task.ParentID == p.GroupID {
			childCount++
		}
	}
	task := board.Task{
		ID:           t.newID(),
		Title:        p.Title,
		Description:  p.Description,
		Category:     board.Category(p.Category),
		Status:       defaultStatus(p.Status),
		Dependencies: p.Dependencies,
		ParentID:     p.GroupID,
		Extent:       "parent",
		Position:     &board.Position{X: 20, Y: 50 + float64(childCount)*70},
	}
	flow.Tasks = board.AddTask(flow.Tasks, task)

	if err := t.saveFlow(ctx, flow); err != nil {
		return failure("failed to save prompt flow: %v", err)
	}
	t.publish(ctx, events.NewTaskAdded(task.ID, task.Title, p.Category, p.GroupID, t.now()))

	res := success("task %q added to group %s", p.Title, p.GroupID)
	res.TaskID = task.ID
	return res
}

// UpdateTaskPosition moves one task on the canvas
func (t *FlowTools) UpdateTaskPosition(ctx context.Context, params json.RawMessage) Result {
	var p UpdatePositionParams
	if res, ok := decodeParams(params, &p); !ok {
		return res
	}

	flow, err := t.loadFlow(ctx)
	if err != nil {
		return failure("failed to load prompt flow: %v", err)
	}

	updated, found := board.UpdatePosition(flow.Tasks, p.ID, *p.Position)
	if !found {
		return failure("task %s not found", p.ID)
	}
	flow.Tasks = updated

	if err := t.saveFlow(ctx, flow); err != nil {
		return failure("failed to save prompt flow: %v", err)
	}
	t.publish(ctx, events.NewTaskMoved(p.ID, p.Position.X, p.Position.Y, t.now()))
	return success("task %s position updated", p.ID)
}

// UpdateTaskPositions applies a batch of canvas moves. Unknown ids are
// skipped; the count of applied moves is reported.
func (t *FlowTools) UpdateTaskPositions(ctx context.Context, params json.RawMessage) Result {
	var p UpdatePositionsParams
	if res, ok := decodeParams(params, &p); !ok {
		return res
	}

	flow, err := t.loadFlow(ctx)
	if err != nil {
		return failure("failed to load prompt flow: %v", err)
	}

	moves := make([]board.PositionUpdate, 0, len(p.Positions))
	for _, m := range p.Positions {
		moves = append(moves, board.PositionUpdate{ID: m.ID, Position: *m.Position})
	}
	updated, applied := board.UpdatePositions(flow.Tasks, moves)
	flow.Tasks = updated

	if err := t.saveFlow(ctx, flow); err != nil {
		return failure("failed to save prompt flow: %v", err)
	}
	res := success("%d of %d positions updated", applied, len(p.Positions))
	res.Updated = applied
	return res
}

// decodeParams unmarshals and validates tool parameters, producing a
// failure Result when either step rejects the input.
func decodeParams(params json.RawMessage, v interface{}) (Result, bool) {
	if len(params) == 0 {
		params = json.RawMessage("{}")
	}
	if err := json.Unmarshal(params, v); err != nil {
		return failure("invalid parameters: %v", err), false
	}
	if err := utils.ValidateStruct(v); err != nil {
		return failure("invalid parameters: %v", err), false
	}
	return Result{}, true
}

func defaultStatus(s string) board.Status {
	if s == "" {
		return board.StatusTodo
	}
	return board.Status(s)
}
