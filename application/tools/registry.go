// Package tools exposes the task-board operations as named tools
// behind a single dispatch point, mirroring how the agent invokes them
// over HTTP. Every tool validates its parameters before touching state
// and reports failures as structured results, never as panics.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"flowdeck/domain/board"

	"go.uber.org/zap"
)

// Result is the envelope every tool returns. Tool-level failures carry
// Success=false and a human-readable message; they are not transport
// errors.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	Flow    *board.Flow `json:"promptFlow,omitempty"`
	Task    *board.Task `json:"task,omitempty"`
	TaskID  string      `json:"taskId,omitempty"`
	Updated int         `json:"updated,omitempty"`
}

func failure(format string, args ...interface{}) Result {
	return Result{Success: false, Message: fmt.Sprintf(format, args...)}
}

func success(format string, args ...interface{}) Result {
	return Result{Success: true, Message: fmt.Sprintf(format, args...)}
}

// Handler executes one named tool against raw JSON parameters
type Handler func(ctx context.Context, params json.RawMessage) Result

// ErrUnknownTool is returned by Invoke for unregistered tool names
type ErrUnknownTool struct {
	Name string
}

func (e ErrUnknownTool) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// Registry dispatches tool invocations to their handlers by name
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	logger   *zap.Logger
}

// NewRegistry creates an empty tool registry
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Register adds a handler under a tool name
func (r *Registry) Register(name string, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("handler already registered for tool %s", name)
	}
	r.handlers[name] = h
	return nil
}

// Names returns the registered tool names
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for n := range r.handlers {
		names = append(names, n)
	}
	return names
}

// Invoke dispatches a named tool. An unregistered name is an
// ErrUnknownTool; everything the tool itself rejects comes back as a
// Result with Success=false.
func (r *Registry) Invoke(ctx context.Context, name string, params json.RawMessage) (Result, error) {
	r.mu.RLock()
	h, exists := r.handlers[name]
	r.mu.RUnlock()

	if !exists {
		return Result{}, ErrUnknownTool{Name: name}
	}

	result := h(ctx, params)
	if !result.Success {
		r.logger.Info("Tool reported failure",
			zap.String("tool", name),
			zap.String("message", result.Message),
		)
	}
	return result, nil
}
