package core

import (
	"time"
)

// BookRegisteredEventType is the event type identifier.
const BookRegisteredEventType = "BookRegistered"

// BookRegistered represents when the minter registers a physical book as a
// uniquely identified asset.
type BookRegistered struct {
	EventType  string
	Owner      PartyIDString
	BookID     BookIDString
	Copies     uint32
	Location   string
	Publisher  string
	Author     string
	Title      string
	OccurredAt OccurredAtTS
}

// BuildBookRegistered creates a new BookRegistered event.
func BuildBookRegistered(
	owner PartyIDString,
	bookID BookIDString,
	copies uint32,
	location string,
	publisher string,
	author string,
	title string,
	occurredAt time.Time,
) BookRegistered {

	event := BookRegistered{
		EventType:  BookRegisteredEventType,
		Owner:      owner,
		BookID:     bookID,
		Copies:     copies,
		Location:   location,
		Publisher:  publisher,
		Author:     author,
		Title:      title,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e BookRegistered) IsEventType() string {
	return BookRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsFailureEvent returns false since this event represents a successful operation.
func (e BookRegistered) IsFailureEvent() bool {
	return false
}
