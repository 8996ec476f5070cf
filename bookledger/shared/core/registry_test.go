package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

func Test_ProjectBookRecord_RegistrationPopulatesTheRecord(t *testing.T) {
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRegistered(holder, bookID, 2, "shelf 3", "O'Reilly", "Vlad Khononov", "Learning Domain-Driven Design", now),
	}

	record := core.ProjectBookRecord(events, bookID)

	assert.Equal(t, core.PartyIDString(holder), record.Owner)
	assert.True(t, record.Registered)
	assert.Equal(t, uint32(2), record.Copies)
	assert.Equal(t, "Learning Domain-Driven Design", record.Title)
}

func Test_ProjectBookRecord_ReRegistrationAfterRemovalRevivesTheBook(t *testing.T) {
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRegistered(holder, bookID, 1, "shelf 3", "Pub", "Author", "Title", now.Add(-2*time.Hour)),
		core.BuildBookRemoved(holder, bookID, true, now.Add(-1*time.Hour)),
		core.BuildBookRegistered(requester, bookID, 1, "shelf 5", "Pub", "Author", "Title", now),
	}

	record := core.ProjectBookRecord(events, bookID)

	assert.Equal(t, core.PartyIDString(requester), record.Owner)
	assert.False(t, record.Lost)
}

func Test_ProjectBookRecord_VerifiedDefenseMarksLostButKeepsTheOwner(t *testing.T) {
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRegistered(holder, bookID, 1, "shelf 3", "Pub", "Author", "Title", now.Add(-3*time.Hour)),
		core.BuildBookRejected(holder, requester, bookID, 300, now.Add(-2*time.Hour)),
		core.BuildDefenseVerified(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	record := core.ProjectBookRecord(events, bookID)

	assert.True(t, record.Lost)
	assert.Equal(t, core.PartyIDString(holder), record.Owner, "the last owner stays on record so they can remove the lost book")
}

func Test_HasActiveTransmission(t *testing.T) {
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	shipped := []core.DomainEvent{
		core.BuildBookShipped(holder, requester, bookID, now.Add(-2*time.Hour)),
	}

	assert.True(t, core.HasActiveTransmission(shipped, bookID))

	accepted := append(shipped, core.BuildBookAccepted(holder, requester, bookID, "", now.Add(-1*time.Hour)))
	assert.False(t, core.HasActiveTransmission(accepted, bookID))

	returning := append(accepted, core.BuildBookReturnShipped(holder, requester, bookID, "", now))
	assert.True(t, core.HasActiveTransmission(returning, bookID))

	rejected := append(shipped, core.BuildBookRejected(holder, requester, bookID, 300, now))
	assert.False(t, core.HasActiveTransmission(rejected, bookID), "a rejected shipment is no longer moving")
}
