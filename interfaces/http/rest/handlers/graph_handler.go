package handlers

import (
	"net/http"

	"flowdeck/application/services"
	"flowdeck/pkg/common"
	pkgerrors "flowdeck/pkg/errors"

	"go.uber.org/zap"
)

// GraphHandler serves the file dependency graph
type GraphHandler struct {
	graphs *services.GraphService
	logger *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(graphs *services.GraphService, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{graphs: graphs, logger: logger}
}

// GetGraph handles GET /api/agent/graph. The graph is recomputed in
// full from the current file set on every request.
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	graph, err := h.graphs.BuildGraph(r.Context())
	if err != nil {
		h.logger.Error("Failed to build dependency graph", zap.Error(err))
		common.RespondError(w, pkgerrors.HTTPStatus(err),
			common.StandardErrorCodes.InternalError, "Failed to build dependency graph")
		return
	}
	common.RespondJSON(w, http.StatusOK, graph)
}
