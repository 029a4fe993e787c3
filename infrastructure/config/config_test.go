package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "flowdeck-agent", cfg.AgentName)
	assert.Equal(t, BackendMemory, cfg.StateBackend)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.EnableAuth)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("AGENT_NAME", "custom-agent")
	t.Setenv("STATE_BACKEND", BackendDynamoDB)
	t.Setenv("TABLE_NAME", "custom-table")
	t.Setenv("ENABLE_CORS", "false")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "custom-agent", cfg.AgentName)
	assert.Equal(t, BackendDynamoDB, cfg.StateBackend)
	assert.Equal(t, "custom-table", cfg.DynamoDBTable)
	assert.False(t, cfg.EnableCORS)
}

func TestValidate_UnknownBackend(t *testing.T) {
	t.Setenv("STATE_BACKEND", "redis")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown STATE_BACKEND")
}

func TestValidate_AgentAPIRequiresBaseURL(t *testing.T) {
	cfg := &Config{StateBackend: BackendAgentAPI}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGENT_API_BASE_URL")
}

func TestValidate_EventsRequireBusName(t *testing.T) {
	cfg := &Config{StateBackend: BackendMemory, EnableEvents: true}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "EVENT_BUS_NAME")
}

func TestValidate_ProductionAuthNeedsSecret(t *testing.T) {
	cfg := &Config{
		StateBackend: BackendMemory,
		Environment:  "production",
		EnableAuth:   true,
	}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
