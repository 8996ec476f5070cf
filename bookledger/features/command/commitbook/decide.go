package commitbook

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonHolderDoesNotOwn = "holder does not currently own the book"
	failureReasonNoPendingRequest = "no pending request for this requester"
	failureReasonAlreadyFunded    = "escrow is already funded for this cycle"
)

// Decide implements the business logic to determine whether an escrow amount should be committed.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A pending request from the requester for the holder's book
//	WHEN: CommitBook command is received
//	THEN: EscrowCommitted event is generated with the demanded amount
//	ERROR: "holder does not currently own the book" on an ownership mismatch
//	ERROR: "no pending request for this requester" without a matching request
//	ERROR: "escrow is already funded for this cycle" once the deposit arrived
//	IDEMPOTENCY: Re-committing the identical amount generates no event (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	record := core.ProjectBookRecord(history, command.BookID)
	if record.Owner != command.Holder {
		return failure(command, failureReasonHolderDoesNotOwn, core.ErrUnauthorized)
	}

	custody := core.ProjectCustody(history, command.Holder, command.Requester, command.BookID)

	switch custody.State {
	case core.CustodyRequested:
		// first commit of this cycle

	case core.CustodyCommitted:
		if custody.CommittedAmount == command.Amount {
			return core.IdempotentDecision() // idempotency - the same amount is already committed
		}
		// re-commit with a different amount replaces the demand

	case core.CustodyIdle, core.CustodyArchived, core.CustodyLost:
		return failure(command, failureReasonNoPendingRequest, core.ErrNoPendingRequest)

	default:
		// EscrowFunded and every later state: the demand is no longer negotiable
		return failure(command, failureReasonAlreadyFunded, core.ErrInvalidState)
	}

	return core.SuccessDecision(
		core.BuildEscrowCommitted(
			command.Holder,
			command.Requester,
			command.BookID,
			command.Amount,
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
			core.BookRegisteredEventType,
			core.BookRemovedEventType,
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
