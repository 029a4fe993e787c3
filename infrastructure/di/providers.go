package di

import (
	"context"
	"time"

	"flowdeck/application/ports"
	"flowdeck/application/services"
	"flowdeck/application/tools"
	"flowdeck/infrastructure/config"
	"flowdeck/infrastructure/files"
	"flowdeck/infrastructure/messaging"
	"flowdeck/infrastructure/messaging/eventbridge"
	"flowdeck/infrastructure/persistence/agentapi"
	ddbstore "flowdeck/infrastructure/persistence/dynamodb"
	"flowdeck/infrastructure/persistence/memory"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Store        ports.StateStore
	Publisher    ports.EventPublisher
	Registry     *tools.Registry
	FlowService  *services.FlowService
	GraphService *services.GraphService
	Watcher      *files.Watcher
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideStateStore selects the state store backend from configuration
func ProvideStateStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.StateStore {
	switch cfg.StateBackend {
	case config.BackendDynamoDB:
		return ddbstore.NewStateStore(client, cfg.DynamoDBTable, logger)
	case config.BackendAgentAPI:
		timeout := time.Duration(cfg.AgentAPITimeout) * time.Millisecond
		return agentapi.NewClient(cfg.AgentAPIBaseURL, timeout, logger)
	default:
		return memory.NewStateStore()
	}
}

// ProvideEventPublisher selects the event publisher: EventBridge when
// events are enabled, log-only otherwise.
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EnableEvents {
		return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
	}
	return messaging.NewLogPublisher(logger)
}

// ProvideRegistry creates the tool registry with every flow tool wired
func ProvideRegistry(store ports.StateStore, publisher ports.EventPublisher, cfg *config.Config, logger *zap.Logger) (*tools.Registry, error) {
	registry := tools.NewRegistry(logger)
	flowTools := tools.NewFlowTools(store, publisher, cfg.AgentName, logger)
	if err := flowTools.RegisterAll(registry); err != nil {
		return nil, err
	}
	return registry, nil
}

// ProvideFlowService creates the board read service
func ProvideFlowService(store ports.StateStore, cfg *config.Config, logger *zap.Logger) *services.FlowService {
	return services.NewFlowService(store, cfg.AgentName, logger)
}

// ProvideGraphService creates the dependency-graph read service
func ProvideGraphService(store ports.StateStore, cfg *config.Config, logger *zap.Logger) *services.GraphService {
	return services.NewGraphService(store, cfg.AgentName, logger)
}

// ProvideWatcher creates the workspace watcher, or nil when no
// workspace directory is configured.
func ProvideWatcher(store ports.StateStore, cfg *config.Config, logger *zap.Logger) *files.Watcher {
	if cfg.WorkspaceDir == "" {
		return nil
	}
	return files.NewWatcher(cfg.WorkspaceDir, cfg.AgentName, store, logger)
}
