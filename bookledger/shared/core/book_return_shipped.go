package core

import (
	"time"
)

// BookReturnShippedEventType is the event type identifier.
const BookReturnShippedEventType = "BookReturnShipped"

// BookReturnShipped represents the requester sending a rented book back:
// the requester->holder transmission flag is now set.
type BookReturnShipped struct {
	EventType  string
	Holder     PartyIDString
	Requester  PartyIDString
	BookID     BookIDString
	Note       NoteString
	OccurredAt OccurredAtTS
}

// BuildBookReturnShipped creates a new BookReturnShipped event.
func BuildBookReturnShipped(
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
	note NoteString,
	occurredAt time.Time,
) BookReturnShipped {

	event := BookReturnShipped{
		EventType:  BookReturnShippedEventType,
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		Note:       note,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e BookReturnShipped) IsEventType() string {
	return BookReturnShippedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturnShipped) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e BookReturnShipped) IsFailureEvent() bool {
	return false
}
