package transmissionstatus

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

// Project implements the query logic to determine whether a book is in flight
// from the sender to the receiver.
// This is a pure function with no side effects - it takes the current domain
// events and a query and returns the projected transmission state.
//
// Query Logic:
//
//	GIVEN: A directed (sender, receiver, book) triple
//	WHEN: TransmissionStatus query is executed
//	THEN: TransmissionStatus struct is returned with the in-flight flag
//	INCLUDES: The outbound leg (holder to requester) and the return leg
//	          (requester to holder), each tracked in its own direction
//	EXCLUDES: Rejected shipments (the dispute path owns them)
func Project(history core.DomainEvents, query Query, maxSequence uint) TransmissionStatus {
	inTransit := false

	for _, event := range history {
		switch e := event.(type) {
		case core.BookShipped:
			// outbound leg: the holder is the sender
			if e.Holder == query.Sender && e.Requester == query.Receiver && e.BookID == query.BookID {
				inTransit = true
			}

		case core.BookAccepted:
			if e.Holder == query.Sender && e.Requester == query.Receiver && e.BookID == query.BookID {
				inTransit = false
			}

		case core.BookRejected:
			if e.Holder == query.Sender && e.Requester == query.Receiver && e.BookID == query.BookID {
				inTransit = false
			}

		case core.BookReturnShipped:
			// return leg: the requester is the sender
			if e.Holder == query.Receiver && e.Requester == query.Sender && e.BookID == query.BookID {
				inTransit = true
			}

		case core.BookArchived:
			if e.Holder == query.Receiver && e.Requester == query.Sender && e.BookID == query.BookID {
				inTransit = false
			}
		}
	}

	return TransmissionStatus{
		Sender:         query.Sender,
		Receiver:       query.Receiver,
		BookID:         query.BookID,
		InTransit:      inTransit,
		SequenceNumber: maxSequence,
	}
}

// BuildEventFilter creates the filter for querying all transmission events
// related to the specified book.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookShippedEventType,
			core.BookAcceptedEventType,
			core.BookReturnShippedEventType,
			core.BookArchivedEventType,
			core.BookRejectedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID),
		).
		Finalize()
}
