package sendbook

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonEscrowNotFunded = "escrow is not funded for this cycle"
	failureReasonInTransit       = "book has an active transmission"
)

// Decide implements the business logic to determine whether the book should be shipped.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A custody cycle whose escrow deposit is locked
//	WHEN: SendBook command is received
//	THEN: BookShipped event is generated, opening the outbound transmission
//	ERROR: "escrow is not funded for this cycle" before the deposit arrived
//	ERROR: "book has an active transmission" while another shipment is in flight
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	custody := core.ProjectCustody(history, command.Holder, command.Requester, command.BookID)

	if custody.State != core.CustodyEscrowFunded {
		return failure(command, failureReasonEscrowNotFunded, core.ErrInvalidState)
	}

	if core.HasActiveTransmission(history, command.BookID) {
		return failure(command, failureReasonInTransit, core.ErrAssetBusy)
	}

	return core.SuccessDecision(
		core.BuildBookShipped(
			command.Holder,
			command.Requester,
			command.BookID,
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
