package core

import (
	"time"
)

// BookAcceptedEventType is the event type identifier.
const BookAcceptedEventType = "BookAccepted"

// BookAccepted represents the requester confirming receipt: the outbound
// transmission flag is cleared. Ownership does not move here, even for
// permanent trades.
type BookAccepted struct {
	EventType  string
	Holder     PartyIDString
	Requester  PartyIDString
	BookID     BookIDString
	Note       NoteString
	OccurredAt OccurredAtTS
}

// BuildBookAccepted creates a new BookAccepted event.
func BuildBookAccepted(
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
	note NoteString,
	occurredAt time.Time,
) BookAccepted {

	event := BookAccepted{
		EventType:  BookAcceptedEventType,
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		Note:       note,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e BookAccepted) IsEventType() string {
	return BookAcceptedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAccepted) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e BookAccepted) IsFailureEvent() bool {
	return false
}
