package custodystatus

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

// Project implements the query logic to expose the custody state of one
// (holder, requester, book) triple.
// This is a pure function with no side effects - it takes the current domain
// events and a query and returns the projected custody state.
//
// Query Logic:
//
//	GIVEN: A (holder, requester, book) triple
//	WHEN: CustodyStatus query is executed
//	THEN: CustodyStatus struct is returned with the state tag and flags
//	INCLUDES: The current cycle's escrow amounts and transmission flags
//	EXCLUDES: Events of other triples and failure events
func Project(history core.DomainEvents, query Query, maxSequence uint) CustodyStatus {
	custody := core.ProjectCustody(history, query.Holder, query.Requester, query.BookID)

	return CustodyStatus{
		Holder:            query.Holder,
		Requester:         query.Requester,
		BookID:            query.BookID,
		State:             custody.State.String(),
		Permanent:         custody.Permanent,
		CommittedAmount:   custody.CommittedAmount,
		DepositedAmount:   custody.DepositedAmount,
		Refunded:          custody.Refunded,
		OutboundInTransit: custody.OutboundInTransit,
		ReturnInTransit:   custody.ReturnInTransit,
		DisputeFiled:      custody.DisputeFiled,
		SequenceNumber:    maxSequence,
	}
}

// BuildEventFilter creates the filter for querying all custody events
// related to the specified book.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookRequestedEventType,
			core.EscrowCommittedEventType,
			core.EscrowDepositedEventType,
			core.BookShippedEventType,
			core.BookAcceptedEventType,
			core.BookReturnShippedEventType,
			core.BookArchivedEventType,
			core.EscrowRefundedEventType,
			core.BookRejectedEventType,
			core.DefenseVerifiedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID),
		).
		Finalize()
}
