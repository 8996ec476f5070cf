package verifieddefense

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonNoDispute   = "no open dispute for this triple"
	failureReasonWrongAmount = "stated amount does not match the locked deposit"
)

// Decide implements the business logic to determine whether an open dispute
// can be settled in the holder's favor.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: An open dispute (the requester rejected the outbound shipment)
//	WHEN: VerifiedDefense command is received stating the exact locked deposit
//	THEN: DefenseVerified event is generated, awarding the deposit to the
//	      holder and marking the book lost
//	ERROR: "no open dispute for this triple" without a rejection on file,
//	       or after the dispute was already settled by a refund
//	ERROR: "stated amount does not match the locked deposit" on any other value
//	IDEMPOTENCY: Replaying a settled defense generates no event (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	custody := core.ProjectCustody(history, command.Holder, command.Requester, command.BookID)

	if custody.State == core.CustodyLost && custody.DisputeFiled && !custody.Refunded {
		return core.IdempotentDecision() // idempotency - the defense already settled this dispute
	}

	if custody.State != core.CustodyDisputed {
		return failure(command, failureReasonNoDispute, core.ErrNoDispute)
	}

	if command.Amount != custody.DepositedAmount {
		return failure(command, failureReasonWrongAmount, core.ErrWrongAmount)
	}

	return core.SuccessDecision(
		core.BuildDefenseVerified(
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
