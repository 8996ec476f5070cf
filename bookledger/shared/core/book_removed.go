package core

import (
	"time"
)

// BookRemovedEventType is the event type identifier.
const BookRemovedEventType = "BookRemoved"

// BookRemoved represents when a book is taken out of circulation: its owner
// is reset to the zero sentinel. Permanent distinguishes audit semantics but
// not the state transition.
type BookRemoved struct {
	EventType  string
	Owner      PartyIDString
	BookID     BookIDString
	Permanent  bool
	OccurredAt OccurredAtTS
}

// BuildBookRemoved creates a new BookRemoved event.
func BuildBookRemoved(
	owner PartyIDString,
	bookID BookIDString,
	permanent bool,
	occurredAt time.Time,
) BookRemoved {

	event := BookRemoved{
		EventType:  BookRemovedEventType,
		Owner:      owner,
		BookID:     bookID,
		Permanent:  permanent,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e BookRemoved) IsEventType() string {
	return BookRemovedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e BookRemoved) IsFailureEvent() bool {
	return false
}
