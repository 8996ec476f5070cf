package returnbook

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonSameParty      = "sender and receiver are the same party"
	failureReasonNotHeld        = "requester does not currently hold the book"
	failureReasonPermanentTrade = "a permanent trade is not returned"
)

// Decide implements the business logic to determine whether a rented book can be shipped back.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A rental cycle where the requester holds the book
//	WHEN: ReturnBook command is received
//	THEN: BookReturnShipped event is generated, opening the return transmission
//	ERROR: "sender and receiver are the same party" on a degenerate pair
//	ERROR: "requester does not currently hold the book" outside held custody
//	ERROR: "a permanent trade is not returned" for trade cycles
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if command.Holder == command.Requester {
		return failure(command, failureReasonSameParty, core.ErrSameParty)
	}

	custody := core.ProjectCustody(history, command.Holder, command.Requester, command.BookID)

	if custody.State != core.CustodyHeldByRecipient {
		return failure(command, failureReasonNotHeld, core.ErrInvalidState)
	}

	if custody.Permanent {
		return failure(command, failureReasonPermanentTrade, core.ErrInvalidState)
	}

	return core.SuccessDecision(
		core.BuildBookReturnShipped(
			command.Holder,
			command.Requester,
			command.BookID,
			command.Note,
			command.OccurredAt,
		),
	)
}

func failure(command Command, reason string, sentinel error) core.DecisionResult {
	event := core.BuildCustodyOperationFailed(
		commandType,
		command.Holder,
		command.Requester,
		command.BookID,
		reason,
		command.OccurredAt,
	)

	return core.ErrorDecision(event, errors.Join(sentinel, errors.New(event.EventType+": "+reason)))
}

// BuildEventFilter creates the filter for querying all events
// related to the specified book which are relevant for this feature/use-case.
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
