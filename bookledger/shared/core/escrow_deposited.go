package core

import (
	"time"
)

// EscrowDepositedEventType is the event type identifier.
const EscrowDepositedEventType = "EscrowDeposited"

// EscrowDeposited represents the requester locking the exact committed
// amount. It credits both the per-triple book escrow and the requester's
// account escrow.
type EscrowDeposited struct {
	EventType  string
	Holder     PartyIDString
	Requester  PartyIDString
	BookID     BookIDString
	Amount     AmountUint
	OccurredAt OccurredAtTS
}

// BuildEscrowDeposited creates a new EscrowDeposited event.
func BuildEscrowDeposited(
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
	amount AmountUint,
	occurredAt time.Time,
) EscrowDeposited {

	event := EscrowDeposited{
		EventType:  EscrowDepositedEventType,
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		Amount:     amount,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e EscrowDeposited) IsEventType() string {
	return EscrowDepositedEventType
}

// HasOccurredAt returns when this event occurred.
func (e EscrowDeposited) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e EscrowDeposited) IsFailureEvent() bool {
	return false
}
