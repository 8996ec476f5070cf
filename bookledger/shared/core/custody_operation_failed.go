package core

import (
	"time"
)

// OperationFailedEventTypeSuffix marks the audit events recorded for refused
// operations. The full event type is the operation name plus this suffix,
// e.g. "RequestBookFailed".
const OperationFailedEventTypeSuffix = "Failed"

// CustodyOperationFailed records a refused protocol operation for auditing.
// Projections ignore these events, so appending one never changes the
// protocol state the next operation observes.
//
// Holder and Requester are empty for registry operations that involve no
// party pair.
type CustodyOperationFailed struct {
	EventType     string
	Holder        PartyIDString
	Requester     PartyIDString
	BookID        BookIDString
	FailureReason string
	OccurredAt    OccurredAtTS
}

// BuildCustodyOperationFailed creates a failure event for the given operation name.
func BuildCustodyOperationFailed(
	operation string,
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
	failureReason string,
	occurredAt time.Time,
) CustodyOperationFailed {

	event := CustodyOperationFailed{
		EventType:     operation + OperationFailedEventTypeSuffix,
		Holder:        holder,
		Requester:     requester,
		BookID:        bookID,
		FailureReason: failureReason,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the dynamic event type identifier.
func (e CustodyOperationFailed) IsEventType() string {
	return e.EventType
}

// HasOccurredAt returns when this event occurred.
func (e CustodyOperationFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns true: this event records a refused operation.
func (e CustodyOperationFailed) IsFailureEvent() bool {
	return true
}
