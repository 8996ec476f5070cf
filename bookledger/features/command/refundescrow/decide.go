package refundescrow

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonAlreadyRefunded = "deposit has already been released"
	failureReasonNotReleasable   = "deposit is not releasable in the current state"
	failureReasonWrongAmount     = "refund does not match the locked deposit"
)

// Decide implements the business logic to determine whether the locked deposit can be released.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: An archived cycle, or an unanswered dispute
//	WHEN: RefundEscrow command is received with the exact locked amount
//	THEN: EscrowRefunded event is generated paying the requester; settling a
//	      dispute this way marks the book lost
//	ERROR: "deposit has already been released" on a replayed refund
//	ERROR: "deposit is not releasable in the current state" mid-cycle
//	ERROR: "refund does not match the locked deposit" on any other value
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	custody := core.ProjectCustody(history, command.Holder, command.Requester, command.BookID)

	if custody.Refunded {
		return failure(command, failureReasonAlreadyRefunded, core.ErrAlreadyRefunded)
	}

	if custody.State != core.CustodyArchived && custody.State != core.CustodyDisputed {
		return failure(command, failureReasonNotReleasable, core.ErrInvalidState)
	}

	if command.Amount != custody.DepositedAmount || custody.DepositedAmount == 0 {
		return failure(command, failureReasonWrongAmount, core.ErrWrongAmount)
	}

	return core.SuccessDecision(
		core.BuildEscrowRefunded(
			command.Holder,
			command.Requester,
			command.BookID,
			command.Requester,
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
