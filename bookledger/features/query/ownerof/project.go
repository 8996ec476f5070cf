package ownerof

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

// Project implements the query logic to determine the current owner of a book.
// This is a pure function with no side effects - it takes the current domain
// events and a query and returns the projected ownership state.
//
// Query Logic:
//
//	GIVEN: A book with BookID
//	WHEN: OwnerOf query is executed
//	THEN: BookOwner struct is returned with the current owner
//	INCLUDES: Ownership changes through trades (archived with transfer)
//	EXCLUDES: Books removed or lost in a settled dispute (zero party owner)
func Project(history core.DomainEvents, query Query, maxSequence uint) BookOwner {
	record := core.ProjectBookRecord(history, query.BookID)

	owner := record.Owner
	if record.Lost {
		// the registry keeps the last owner on file for removal rights,
		// but a lost book is out of circulation as far as callers go
		owner = core.ZeroParty
	}

	return BookOwner{
		BookID:         query.BookID,
		Owner:          owner,
		Registered:     record.Registered,
		Lost:           record.Lost,
		SequenceNumber: maxSequence,
	}
}

// BuildEventFilter creates the filter for querying all ownership events
// related to the specified book.
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
