package core

import (
	"time"
)

// BookShippedEventType is the event type identifier.
const BookShippedEventType = "BookShipped"

// BookShipped represents the holder sending the book out: the
// holder->requester transmission flag is now set.
type BookShipped struct {
	EventType  string
	Holder     PartyIDString
	Requester  PartyIDString
	BookID     BookIDString
	OccurredAt OccurredAtTS
}

// BuildBookShipped creates a new BookShipped event.
func BuildBookShipped(
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
	occurredAt time.Time,
) BookShipped {

	event := BookShipped{
		EventType:  BookShippedEventType,
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e BookShipped) IsEventType() string {
	return BookShippedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookShipped) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e BookShipped) IsFailureEvent() bool {
	return false
}
