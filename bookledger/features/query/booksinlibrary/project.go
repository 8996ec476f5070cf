package booksinlibrary

import (
	"slices"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

type holding struct {
	owner core.PartyIDString
	info  BookInfo
}

// Project implements the query logic to determine the books a party currently owns.
// This is a pure function with no side effects - it takes the current domain
// events and a query and returns the projected holdings of the specified party.
//
// Query Logic:
//
//	GIVEN: All ownership events in the system
//	WHEN: BooksInLibrary query is executed
//	THEN: LibraryHoldings struct is returned with the party's current books
//	INCLUDES: Books registered by the party and books received in trades
//	EXCLUDES: Books removed, traded away, or lost in a settled dispute
func Project(history core.DomainEvents, query Query, maxSequence uint) LibraryHoldings {
	// Track ownership per book
	holdings := make(map[core.BookIDString]*holding)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookRegistered:
			holdings[e.BookID] = &holding{
				owner: e.Owner,
				info: BookInfo{
					BookID:     e.BookID,
					Title:      e.Title,
					Author:     e.Author,
					Publisher:  e.Publisher,
					Location:   e.Location,
					Copies:     e.Copies,
					AcquiredAt: e.OccurredAt,
				},
			}

		case core.BookRemoved:
			delete(holdings, e.BookID)

		case core.BookArchived:
			if h, ok := holdings[e.BookID]; ok && e.OwnershipTransferred {
				h.owner = e.Requester
				h.info.AcquiredAt = e.OccurredAt
			}

		case core.DefenseVerified:
			delete(holdings, e.BookID)
		}
	}

	// Collect the queried party's books and sort by AcquiredAt (oldest first)
	books := make([]BookInfo, 0, len(holdings))
	for _, h := range holdings {
		if h.owner == query.Party {
			books = append(books, h.info)
		}
	}
	slices.SortFunc(books, func(a, b BookInfo) int {
		return a.AcquiredAt.Compare(b.AcquiredAt)
	})

	return LibraryHoldings{
		Party:          query.Party,
		Books:          books,
		Count:          len(books),
		SequenceNumber: maxSequence,
	}
}

// BuildEventFilter creates the filter for querying all ownership events
// which are relevant for this query/use-case.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookRegisteredEventType,
			core.BookRemovedEventType,
			core.BookArchivedEventType,
			core.DefenseVerifiedEventType,
		).
		Finalize()
}
