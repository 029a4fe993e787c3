package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flowdeck/application/tools"
	"flowdeck/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *ToolHandler {
	t.Helper()
	logger := zap.NewNop()
	reg := tools.NewRegistry(logger)
	ft := tools.NewFlowTools(memory.NewStateStore(), nil, "agent", logger)
	require.NoError(t, ft.RegisterAll(reg))
	return NewToolHandler(reg, logger)
}

func invoke(t *testing.T, h *ToolHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/agent/tool", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Invoke(rec, req)
	return rec
}

func TestToolHandler_SuccessfulInvocation(t *testing.T) {
	h := newTestHandler(t)

	rec := invoke(t, h, `{"tool":"addTaskToPromptFlow","params":{"title":"T","category":"core"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var res tools.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.TaskID)
}

func TestToolHandler_ToolFailureIsStillHTTP200(t *testing.T) {
	h := newTestHandler(t)

	rec := invoke(t, h, `{"tool":"getTaskFromPromptFlow","params":{"id":"ghost"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var res tools.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "not found")
}

func TestToolHandler_UnknownToolIs400(t *testing.T) {
	h := newTestHandler(t)

	rec := invoke(t, h, `{"tool":"noSuchTool"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown tool")
}

func TestToolHandler_MalformedBodyIs400(t *testing.T) {
	h := newTestHandler(t)

	rec := invoke(t, h, `{"tool": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToolHandler_MissingToolNameIs400(t *testing.T) {
	h := newTestHandler(t)

	rec := invoke(t, h, `{"params":{}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToolHandler_GetPromptFlowWithoutParams(t *testing.T) {
	h := newTestHandler(t)

	rec := invoke(t, h, `{"tool":"getPromptFlow"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var res tools.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	require.NotNil(t, res.Flow)
	assert.Equal(t, "agent", res.Flow.MainIdea)
}
