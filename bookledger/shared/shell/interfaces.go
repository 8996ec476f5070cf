package shell

import (
	"context"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

// QueriesEvents defines the interface needed by query handlers for event store operations.
// This abstraction keeps the query slices independent of the concrete engine.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// Query represents the contract for all query types in the ledger.
// Each query encapsulates the intent and parameters needed to retrieve a specific projection.
// The QueryType method enables polymorphic handling and observability instrumentation.
type Query interface {
	QueryType() string
}

// QueryResult represents the contract for all query result types (projections).
// The GetSequenceNumber method returns the highest event sequence number included
// in the projection, enabling consistency checking between reads.
type QueryResult interface {
	GetSequenceNumber() uint
}

// QueryHandler defines the contract for components that process queries and return projections.
// Handlers orchestrate the complete query workflow: retrieving events, unmarshaling, and projecting.
// The generic parameters Q and R ensure type safety between queries and their corresponding results.
type QueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// ProjectionFunc defines the signature for pure functions that transform events into projections.
// Functions must be deterministic - the same events always produce the same projection.
type ProjectionFunc[Q Query, R QueryResult] func(
	events core.DomainEvents,
	query Q,
	maxSeq uint,
) R

// FilterBuilderFunc constructs event store filters based on query parameters.
// For parameter-less queries, implementations return a filter without predicates
// (only filter by event types).
type FilterBuilderFunc[Q Query] func(query Q) eventstore.Filter

// Command represents the contract for all command types in the ledger.
// Each command encapsulates the intent and parameters needed to execute a specific protocol operation.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic.
// Handlers orchestrate the complete command workflow: retrieving events, unmarshaling, deciding, and appending.
// Handlers return HandlerResult containing business outcomes (idempotency) and execution metadata (retry info).
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// CommandHandler defines the contract for command handlers that return only errors.
// Typically implemented by wrapper types that convert (HandlerResult, error) to just error.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) error
}
