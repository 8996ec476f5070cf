package removebook

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonNotFound     = "book is not owned by anyone"
	failureReasonUnauthorized = "only the minter or the owner may remove a book"
	failureReasonInTransit    = "book has an active transmission"
)

// Decide implements the business logic to determine whether a book should be removed.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A registered book
//	WHEN: RemoveBook command is received
//	THEN: BookRemoved event is generated and the owner reverts to the zero party
//	ERROR: "book is not owned by anyone" if the book has no current owner
//	ERROR: "only the minter or the owner may remove a book" on a role violation
//	ERROR: "book has an active transmission" while the book is physically in flight
func Decide(history core.DomainEvents, command Command, minter core.PartyIDString) core.DecisionResult {
	record := core.ProjectBookRecord(history, command.BookID)

	if record.Owner == core.ZeroParty {
		return failure(command, failureReasonNotFound, core.ErrNotFound)
	}

	if command.Actor != minter && command.Actor != record.Owner {
		return failure(command, failureReasonUnauthorized, core.ErrUnauthorized)
	}

	if core.HasActiveTransmission(history, command.BookID) {
		return failure(command, failureReasonInTransit, core.ErrAssetBusy)
	}

	return core.SuccessDecision(
		core.BuildBookRemoved(
			record.Owner,
			command.BookID,
			command.Permanent,
			command.OccurredAt,
		),
	)
}

func failure(command Command, reason string, sentinel error) core.DecisionResult {
	event := core.BuildCustodyOperationFailed(
		commandType,
		core.ZeroParty,
		core.ZeroParty,
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
			core.BookShippedEventType,
			core.BookAcceptedEventType,
			core.BookReturnShippedEventType,
			core.BookArchivedEventType,
			core.BookRejectedEventType,
			core.DefenseVerifiedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID),
		).
		Finalize()
}
