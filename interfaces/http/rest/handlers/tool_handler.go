package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"flowdeck/application/tools"
	"flowdeck/pkg/utils"

	"go.uber.org/zap"
)

// ToolHandler serves the tool invocation endpoint
type ToolHandler struct {
	registry *tools.Registry
	logger   *zap.Logger
}

// NewToolHandler creates a new tool handler
func NewToolHandler(registry *tools.Registry, logger *zap.Logger) *ToolHandler {
	return &ToolHandler{registry: registry, logger: logger}
}

// ToolRequest is the body of POST /api/agent/tool
type ToolRequest struct {
	Tool   string          `json:"tool" validate:"required"`
	Params json.RawMessage `json:"params"`
}

// Invoke handles POST /api/agent/tool. Tool-level failures come back as
// HTTP 200 with success=false; 4xx is reserved for transport problems
// (bad JSON, unknown tool).
func (h *ToolHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	var req ToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.registry.Invoke(r.Context(), req.Tool, req.Params)
	if err != nil {
		var unknown tools.ErrUnknownTool
		if errors.As(err, &unknown) {
			h.respondError(w, http.StatusBadRequest, unknown.Error())
			return
		}
		h.logger.Error("Tool invocation failed",
			zap.String("tool", req.Tool),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "Tool invocation failed")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func (h *ToolHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *ToolHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
		"code":    status,
	})
}
