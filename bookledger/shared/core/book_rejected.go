package core

import (
	"time"
)

// BookRejectedEventType is the event type identifier.
const BookRejectedEventType = "BookRejected"

// BookRejected represents the requester contesting an outbound shipment they
// never received. The triple enters the disputed state and the deposit
// becomes provisionally returnable to the requester.
type BookRejected struct {
	EventType     string
	Holder        PartyIDString
	Requester     PartyIDString
	BookID        BookIDString
	ClaimedAmount AmountUint
	OccurredAt    OccurredAtTS
}

// BuildBookRejected creates a new BookRejected event.
func BuildBookRejected(
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
	claimedAmount AmountUint,
	occurredAt time.Time,
) BookRejected {

	event := BookRejected{
		EventType:     BookRejectedEventType,
		Holder:        holder,
		Requester:     requester,
		BookID:        bookID,
		ClaimedAmount: claimedAmount,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e BookRejected) IsEventType() string {
	return BookRejectedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRejected) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e BookRejected) IsFailureEvent() bool {
	return false
}
