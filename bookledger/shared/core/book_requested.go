package core

import (
	"time"
)

// BookRequestedEventType is the event type identifier.
const BookRequestedEventType = "BookRequested"

// BookRequested represents a requester asking a holder for custody of a book.
// Permanent marks a trade (ownership moves on archive) as opposed to a rental.
type BookRequested struct {
	EventType  string
	Holder     PartyIDString
	Requester  PartyIDString
	BookID     BookIDString
	Permanent  bool
	OccurredAt OccurredAtTS
}

// BuildBookRequested creates a new BookRequested event.
func BuildBookRequested(
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
	permanent bool,
	occurredAt time.Time,
) BookRequested {

	event := BookRequested{
		EventType:  BookRequestedEventType,
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		Permanent:  permanent,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e BookRequested) IsEventType() string {
	return BookRequestedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRequested) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e BookRequested) IsFailureEvent() bool {
	return false
}
