package rejectbook

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonNotInTransit = "book is not in outbound transit to this requester"
	failureReasonWrongClaim   = "claim does not match the locked deposit"
)

// Decide implements the business logic to determine whether an outbound shipment can be disputed.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book in outbound transit to the requester
//	WHEN: RejectBook command is received claiming the exact locked deposit
//	THEN: BookRejected event is generated, freezing the cycle in dispute
//	ERROR: "book is not in outbound transit to this requester" otherwise
//	ERROR: "claim does not match the locked deposit" on any other value
//	IDEMPOTENCY: Re-rejecting an open dispute generates no event (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	custody := core.ProjectCustody(history, command.Holder, command.Requester, command.BookID)

	if custody.State == core.CustodyDisputed {
		return core.IdempotentDecision() // idempotency - the dispute is already on file
	}

	if custody.State != core.CustodyInTransitOutbound {
		return failure(command, failureReasonNotInTransit, core.ErrNotInTransit)
	}

	if command.ClaimedAmount != custody.DepositedAmount {
		return failure(command, failureReasonWrongClaim, core.ErrWrongAmount)
	}

	return core.SuccessDecision(
		core.BuildBookRejected(
			command.Holder,
			command.Requester,
			command.BookID,
			command.ClaimedAmount,
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
