package acceptbook

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonNotInTransit    = "book is not in outbound transit to this requester"
	failureReasonInvalidMetadata = "note is too long or not valid UTF-8"
)

// Decide implements the business logic to determine whether receipt of the book can be confirmed.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book in outbound transit to the requester
//	WHEN: AcceptBook command is received
//	THEN: BookAccepted event is generated and the requester holds the book
//	ERROR: "book is not in outbound transit to this requester" otherwise
//	ERROR: "note is too long or not valid UTF-8" on a malformed note
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if !core.ValidMetadataString(command.Note) {
		return failure(command, failureReasonInvalidMetadata, core.ErrInvalidState)
	}

	custody := core.ProjectCustody(history, command.Holder, command.Requester, command.BookID)

	if custody.State != core.CustodyInTransitOutbound {
		return failure(command, failureReasonNotInTransit, core.ErrNotInTransit)
	}

	return core.SuccessDecision(
		core.BuildBookAccepted(
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
