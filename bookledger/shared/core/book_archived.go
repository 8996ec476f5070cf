package core

import (
	"time"
)

// BookArchivedEventType is the event type identifier.
const BookArchivedEventType = "BookArchived"

// BookArchived closes a custody cycle: all transmission flags are cleared
// and the escrow becomes releasable. OwnershipTransferred is true for
// permanent trades, moving the owner to the requester.
type BookArchived struct {
	EventType            string
	Holder               PartyIDString
	Requester            PartyIDString
	BookID               BookIDString
	Note                 NoteString
	OwnershipTransferred bool
	OccurredAt           OccurredAtTS
}

// BuildBookArchived creates a new BookArchived event.
func BuildBookArchived(
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
	note NoteString,
	ownershipTransferred bool,
	occurredAt time.Time,
) BookArchived {

	event := BookArchived{
		EventType:            BookArchivedEventType,
		Holder:               holder,
		Requester:            requester,
		BookID:               bookID,
		Note:                 note,
		OwnershipTransferred: ownershipTransferred,
		OccurredAt:           ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e BookArchived) IsEventType() string {
	return BookArchivedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookArchived) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e BookArchived) IsFailureEvent() bool {
	return false
}
