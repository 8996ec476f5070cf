package registerbook

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonNotMinter       = "only the minter may register books"
	failureReasonDuplicateAsset  = "book id is already registered to an owner"
	failureReasonInvalidMetadata = "metadata string is too long or not valid UTF-8"
)

// Decide implements the business logic to determine whether a book should be registered.
// This is a pure function with no side effects - it takes the current domain events, a command
// and the minter identity and returns the event that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A book id and descriptive metadata
//	WHEN: RegisterBook command is received
//	THEN: BookRegistered event is generated with the minter as owner
//	ERROR: "only the minter may register books" if the actor is not the minter
//	ERROR: "book id is already registered to an owner" if the id has a current owner
//	ERROR: "metadata string is too long or not valid UTF-8" on malformed metadata
func Decide(history core.DomainEvents, command Command, minter core.PartyIDString) core.DecisionResult {
	if command.Actor != minter {
		return failure(command, failureReasonNotMinter, core.ErrUnauthorized)
	}

	if !validMetadata(command) {
		return failure(command, failureReasonInvalidMetadata, core.ErrInvalidState)
	}

	record := core.ProjectBookRecord(history, command.BookID)
	if record.Owner != core.ZeroParty {
		return failure(command, failureReasonDuplicateAsset, core.ErrDuplicateAsset)
	}

	return core.SuccessDecision(
		core.BuildBookRegistered(
			command.Actor,
			command.BookID,
			command.Copies,
			command.Location,
			command.Publisher,
			command.Author,
			command.Title,
			command.OccurredAt,
		),
	)
}

func validMetadata(command Command) bool {
	return core.ValidMetadataString(command.Location) &&
		core.ValidMetadataString(command.Publisher) &&
		core.ValidMetadataString(command.Author) &&
		core.ValidMetadataString(command.Title)
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
			core.BookArchivedEventType,
			core.DefenseVerifiedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID),
		).
		Finalize()
}
