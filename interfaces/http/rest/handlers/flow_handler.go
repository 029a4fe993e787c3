package handlers

import (
	"net/http"

	"flowdeck/application/services"
	"flowdeck/pkg/common"
	pkgerrors "flowdeck/pkg/errors"

	"go.uber.org/zap"
)

// FlowHandler serves read-side views of the task board
type FlowHandler struct {
	flows  *services.FlowService
	logger *zap.Logger
}

// NewFlowHandler creates a new flow handler
func NewFlowHandler(flows *services.FlowService, logger *zap.Logger) *FlowHandler {
	return &FlowHandler{flows: flows, logger: logger}
}

// GetFlow handles GET /api/agent/flow
func (h *FlowHandler) GetFlow(w http.ResponseWriter, r *http.Request) {
	flow, err := h.flows.Get(r.Context())
	if err != nil {
		h.logger.Error("Failed to load flow", zap.Error(err))
		common.RespondError(w, pkgerrors.HTTPStatus(err),
			common.StandardErrorCodes.InternalError, "Failed to load prompt flow")
		return
	}
	common.RespondJSON(w, http.StatusOK, flow)
}

// GetView handles GET /api/agent/flow/view, the rendered node/edge form
func (h *FlowHandler) GetView(w http.ResponseWriter, r *http.Request) {
	view, err := h.flows.View(r.Context())
	if err != nil {
		h.logger.Error("Failed to render flow view", zap.Error(err))
		common.RespondError(w, pkgerrors.HTTPStatus(err),
			common.StandardErrorCodes.InternalError, "Failed to render board view")
		return
	}
	common.RespondJSON(w, http.StatusOK, view)
}
