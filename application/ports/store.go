// Package ports defines the interfaces the application layer depends
// on. Infrastructure adapters implement them; the board model itself
// never touches a store directly, keeping it independently testable.
package ports

import (
	"context"

	"flowdeck/domain/board"
	"flowdeck/domain/codegraph"
	"flowdeck/domain/events"
)

// StateStore holds the per-agent state documents. The flow document is
// read and written wholesale: there is no field-level update path, and
// a later write simply overwrites the document (last-writer-wins).
//
// LoadFlow returns (nil, nil) when no document exists yet; the flow is
// created lazily on first mutation.
type StateStore interface {
	LoadFlow(ctx context.Context, agentID string) (*board.Flow, error)
	SaveFlow(ctx context.Context, agentID string, flow board.Flow) error

	LoadFiles(ctx context.Context, agentID string) (map[string]codegraph.File, error)
	SaveFiles(ctx context.Context, agentID string, files map[string]codegraph.File) error
}

// EventPublisher delivers domain events to interested consumers.
// Publish failures are logged by callers and never fail the mutation
// that raised the event.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
