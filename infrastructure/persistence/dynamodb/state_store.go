// Package dynamodb persists agent state documents in a single DynamoDB
// table, one item per document: PK = AGENT#<id>, SK = FLOW or FILES.
// Documents are written wholesale, matching the board model's
// last-writer-wins semantics.
package dynamodb

import (
	"context"
	"fmt"
	"time"

	"flowdeck/domain/board"
	"flowdeck/domain/codegraph"
	pkgerrors "flowdeck/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	skFlow  = "FLOW"
	skFiles = "FILES"
)

// StateStore implements the StateStore port against DynamoDB
type StateStore struct {
	client    *awsdynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewStateStore creates a DynamoDB-backed state store
func NewStateStore(client *awsdynamodb.Client, tableName string, logger *zap.Logger) *StateStore {
	return &StateStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// flowItem is the DynamoDB item holding the whole flow document
type flowItem struct {
	PK        string     `dynamodbav:"PK"`
	SK        string     `dynamodbav:"SK"`
	Flow      board.Flow `dynamodbav:"Flow"`
	UpdatedAt string     `dynamodbav:"UpdatedAt"`
}

// filesItem is the DynamoDB item holding the whole file set
type filesItem struct {
	PK        string                    `dynamodbav:"PK"`
	SK        string                    `dynamodbav:"SK"`
	Files     map[string]codegraph.File `dynamodbav:"Files"`
	UpdatedAt string                    `dynamodbav:"UpdatedAt"`
}

func agentPK(agentID string) string {
	return "AGENT#" + agentID
}

// LoadFlow fetches the agent's flow document, (nil, nil) when absent
func (s *StateStore) LoadFlow(ctx context.Context, agentID string) (*board.Flow, error) {
	out, err := s.getItem(ctx, agentID, skFlow)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}

	var item flowItem
	if err := attributevalue.UnmarshalMap(out, &item); err != nil {
		return nil, fmt.Errorf("unmarshal flow document: %w", err)
	}
	return &item.Flow, nil
}

// SaveFlow writes the agent's flow document wholesale
func (s *StateStore) SaveFlow(ctx context.Context, agentID string, flow board.Flow) error {
	item := flowItem{
		PK:        agentPK(agentID),
		SK:        skFlow,
		Flow:      flow,
		UpdatedAt: time.Now().Format(time.RFC3339),
	}
	return s.putItem(ctx, item, "flow")
}

// LoadFiles fetches the agent's file set, empty when absent
func (s *StateStore) LoadFiles(ctx context.Context, agentID string) (map[string]codegraph.File, error) {
	out, err := s.getItem(ctx, agentID, skFiles)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return map[string]codegraph.File{}, nil
	}

	var item filesItem
	if err := attributevalue.UnmarshalMap(out, &item); err != nil {
		return nil, fmt.Errorf("unmarshal file set: %w", err)
	}
	if item.Files == nil {
		item.Files = map[string]codegraph.File{}
	}
	return item.Files, nil
}

// SaveFiles writes the agent's file set wholesale
func (s *StateStore) SaveFiles(ctx context.Context, agentID string, files map[string]codegraph.File) error {
	item := filesItem{
		PK:        agentPK(agentID),
		SK:        skFiles,
		Files:     files,
		UpdatedAt: time.Now().Format(time.RFC3339),
	}
	return s.putItem(ctx, item, "files")
}

func (s *StateStore) getItem(ctx context.Context, agentID, sk string) (map[string]types.AttributeValue, error) {
	out, err := s.client.GetItem(ctx, &awsdynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: agentPK(agentID)},
			"SK": &types.AttributeValueMemberS{Value: sk},
		},
	})
	if err != nil {
		s.logger.Error("DynamoDB GetItem failed",
			zap.String("agentID", agentID),
			zap.String("sk", sk),
			zap.Error(err),
		)
		return nil, pkgerrors.NewDatabaseError("get "+sk, err)
	}
	if out.Item == nil {
		return nil, nil
	}
	return out.Item, nil
}

func (s *StateStore) putItem(ctx context.Context, item interface{}, kind string) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", kind, err)
	}

	_, err = s.client.PutItem(ctx, &awsdynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		s.logger.Error("DynamoDB PutItem failed",
			zap.String("kind", kind),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("put "+kind, err)
	}
	return nil
}
