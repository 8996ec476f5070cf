package core

import (
	"time"
)

// EscrowCommittedEventType is the event type identifier.
const EscrowCommittedEventType = "EscrowCommitted"

// EscrowCommitted represents the holder naming the deposit they demand
// before shipping the requested book.
type EscrowCommitted struct {
	EventType  string
	Holder     PartyIDString
	Requester  PartyIDString
	BookID     BookIDString
	Amount     AmountUint
	OccurredAt OccurredAtTS
}

// BuildEscrowCommitted creates a new EscrowCommitted event.
func BuildEscrowCommitted(
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
	amount AmountUint,
	occurredAt time.Time,
) EscrowCommitted {

	event := EscrowCommitted{
		EventType:  EscrowCommittedEventType,
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		Amount:     amount,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e EscrowCommitted) IsEventType() string {
	return EscrowCommittedEventType
}

// HasOccurredAt returns when this event occurred.
func (e EscrowCommitted) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e EscrowCommitted) IsFailureEvent() bool {
	return false
}
