package archivebook

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonWrongActorRental = "only the holder archives a rental"
	failureReasonWrongActorTrade  = "only the requester archives a trade"
	failureReasonNotYetReturned   = "book has not yet been shipped back"
	failureReasonNoCycleToClose   = "no custody cycle to close"
)

// Decide implements the business logic to determine whether a custody cycle can be closed.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A rental cycle with the book shipped back, or a trade cycle with the book held
//	WHEN: ArchiveBook command is received from the confirming party
//	THEN: BookArchived event is generated; a trade also transfers ownership
//	ERROR: "only the holder archives a rental" / "only the requester archives a trade"
//	ERROR: "book has not yet been shipped back" while a rental is still out
//	ERROR: "no custody cycle to close" in any other state
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	custody := core.ProjectCustody(history, command.Holder, command.Requester, command.BookID)

	if custody.Permanent {
		return decideTrade(custody, command)
	}

	return decideRental(custody, command)
}

// decideTrade closes a permanent trade: the requester keeps the book,
// so they confirm from held custody and ownership moves.
func decideTrade(custody core.Custody, command Command) core.DecisionResult {
	if command.Actor != command.Requester {
		return failure(command, failureReasonWrongActorTrade, core.ErrUnauthorized)
	}

	if custody.State != core.CustodyHeldByRecipient {
		return failure(command, failureReasonNoCycleToClose, core.ErrInvalidState)
	}

	return core.SuccessDecision(
		core.BuildBookArchived(
			command.Holder,
			command.Requester,
			command.BookID,
			command.Note,
			true,
			command.OccurredAt,
		),
	)
}

// decideRental closes a rental: the holder confirms the returned book arrived.
func decideRental(custody core.Custody, command Command) core.DecisionResult {
	if command.Actor != command.Holder {
		return failure(command, failureReasonWrongActorRental, core.ErrUnauthorized)
	}

	switch custody.State {
	case core.CustodyInTransitReturn:
		// the only state a rental archives from

	case core.CustodyInTransitOutbound, core.CustodyHeldByRecipient:
		return failure(command, failureReasonNotYetReturned, core.ErrNotYetReturned)

	default:
		return failure(command, failureReasonNoCycleToClose, core.ErrInvalidState)
	}

	return core.SuccessDecision(
		core.BuildBookArchived(
			command.Holder,
			command.Requester,
			command.BookID,
			command.Note,
			false,
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
