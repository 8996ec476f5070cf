package core

import (
	"time"
)

// DefenseVerifiedEventType is the event type identifier.
const DefenseVerifiedEventType = "DefenseVerified"

// DefenseVerified finalizes a dispute in the holder's favor: the escrow
// stays with the holder, the requester's claim is invalidated, and the book
// is marked lost without a return transmission.
type DefenseVerified struct {
	EventType  string
	Holder     PartyIDString
	Requester  PartyIDString
	BookID     BookIDString
	Amount     AmountUint
	OccurredAt OccurredAtTS
}

// BuildDefenseVerified creates a new DefenseVerified event.
func BuildDefenseVerified(
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
	amount AmountUint,
	occurredAt time.Time,
) DefenseVerified {

	event := DefenseVerified{
		EventType:  DefenseVerifiedEventType,
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		Amount:     amount,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e DefenseVerified) IsEventType() string {
	return DefenseVerifiedEventType
}

// HasOccurredAt returns when this event occurred.
func (e DefenseVerified) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e DefenseVerified) IsFailureEvent() bool {
	return false
}
