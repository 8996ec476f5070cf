package bookescrow

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

// Project implements the query logic to determine the escrow state of one
// (holder, requester, book) triple.
// This is a pure function with no side effects - it takes the current domain
// events and a query and returns the projected escrow state.
//
// Query Logic:
//
//	GIVEN: A (holder, requester, book) triple
//	WHEN: BookEscrow query is executed
//	THEN: BookEscrow struct is returned with committed and locked amounts
//	INCLUDES: The current cycle's commitment and locked deposit
//	EXCLUDES: Amounts of earlier, completed cycles (a new request resets them)
func Project(history core.DomainEvents, query Query, maxSequence uint) BookEscrow {
	custody := core.ProjectCustody(history, query.Holder, query.Requester, query.BookID)

	return BookEscrow{
		Holder:          query.Holder,
		Requester:       query.Requester,
		BookID:          query.BookID,
		CommittedAmount: custody.CommittedAmount,
		DepositedAmount: custody.DepositedAmount,
		Refunded:        custody.Refunded,
		SequenceNumber:  maxSequence,
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
