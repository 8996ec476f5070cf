package custodystatus

import (
	"context"

	"github.com/peershelf/bookledger-go/bookledger/shared/shell"
)

// QueryHandler orchestrates the complete query processing workflow.
// It handles event store interactions and delegates projection logic to the pure core functions.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle executes the complete query processing workflow: Query -> Project.
// It queries the current event history and delegates projection logic to the core function.
func (h QueryHandler) Handle(ctx context.Context, query Query) (CustodyStatus, error) {
	filter := BuildEventFilter(query.BookID)

	// Query phase
	storableEvents, maxSeq, err := h.eventStore.Query(ctx, filter)
	if err != nil {
		return CustodyStatus{}, err
	}

	// Unmarshal phase
	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return CustodyStatus{}, err
	}

	// Projection phase
	result := Project(history, query, maxSeq)

	return result, nil
}
