package core

import (
	"time"
)

// EscrowRefundedEventType is the event type identifier.
const EscrowRefundedEventType = "EscrowRefunded"

// EscrowRefunded releases a locked deposit to the payee and zeroes the
// escrow records of the triple. After an unanswered dispute the refund also
// settles the triple as lost.
type EscrowRefunded struct {
	EventType  string
	Holder     PartyIDString
	Requester  PartyIDString
	BookID     BookIDString
	Payee      PartyIDString
	Amount     AmountUint
	OccurredAt OccurredAtTS
}

// BuildEscrowRefunded creates a new EscrowRefunded event.
func BuildEscrowRefunded(
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
	payee PartyIDString,
	amount AmountUint,
	occurredAt time.Time,
) EscrowRefunded {

	event := EscrowRefunded{
		EventType:  EscrowRefundedEventType,
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		Payee:      payee,
		Amount:     amount,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e EscrowRefunded) IsEventType() string {
	return EscrowRefundedEventType
}

// HasOccurredAt returns when this event occurred.
func (e EscrowRefunded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e EscrowRefunded) IsFailureEvent() bool {
	return false
}
