package config

import (
	"fmt"
	"os"
	"strconv"
)

// Supported state store backends
const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendAgentAPI = "agentapi"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Agent identity: keys the state documents and seeds the main idea
	// of a lazily created flow
	AgentName string

	// State store backend selection
	StateBackend string

	// AWS configuration (dynamodb backend, eventbridge publisher)
	AWSRegion     string
	DynamoDBTable string
	EventBusName  string

	// External agent-state service (agentapi backend)
	AgentAPIBaseURL string
	AgentAPITimeout int // milliseconds

	// Workspace directory watched for source files; empty disables the
	// watcher and the file set comes from the state store alone
	WorkspaceDir string

	// Authentication
	EnableAuth bool
	JWTSecret  string
	JWTIssuer  string

	// Logging and features
	LogLevel     string
	EnableCORS   bool
	EnableEvents bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AgentName:     getEnv("AGENT_NAME", "flowdeck-agent"),
		StateBackend:  getEnv("STATE_BACKEND", BackendMemory),

		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: getEnv("TABLE_NAME", "flowdeck-state"),
		EventBusName:  getEnv("EVENT_BUS_NAME", ""),

		AgentAPIBaseURL: getEnv("AGENT_API_BASE_URL", ""),
		AgentAPITimeout: getEnvInt("AGENT_API_TIMEOUT_MS", 10000),

		WorkspaceDir: getEnv("WORKSPACE_DIR", ""),

		EnableAuth: getEnvBool("ENABLE_AUTH", false),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		JWTIssuer:  getEnv("JWT_ISSUER", "flowdeck"),

		LogLevel:     getEnv("LOG_LEVEL", "info"),
		EnableCORS:   getEnvBool("ENABLE_CORS", true),
		EnableEvents: getEnvBool("ENABLE_EVENTS", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.StateBackend {
	case BackendMemory, BackendDynamoDB, BackendAgentAPI:
	default:
		return fmt.Errorf("unknown STATE_BACKEND: %s", c.StateBackend)
	}

	if c.StateBackend == BackendDynamoDB && c.DynamoDBTable == "" {
		return fmt.Errorf("TABLE_NAME is required for the dynamodb backend")
	}
	if c.StateBackend == BackendAgentAPI && c.AgentAPIBaseURL == "" {
		return fmt.Errorf("AGENT_API_BASE_URL is required for the agentapi backend")
	}
	if c.EnableEvents && c.EventBusName == "" {
		return fmt.Errorf("EVENT_BUS_NAME is required when events are enabled")
	}
	if c.Environment == "production" && c.EnableAuth && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production when auth is enabled")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
