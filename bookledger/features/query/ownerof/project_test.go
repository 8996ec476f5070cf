package ownerof_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/query/ownerof"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	owner     = "holder-1"
	requester = "requester-2"
)

func Test_Project_ReturnsOwner_WhenBookIsRegistered(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRegistered(owner, bookID, 1, "shelf 3", "O'Reilly", "Some Author", "Some Title", now),
	}

	// act
	result := ownerof.Project(events, ownerof.BuildQuery(bookID), 1)

	// assert
	assert.Equal(t, core.PartyIDString(owner), result.Owner)
	assert.True(t, result.Registered)
	assert.False(t, result.Lost)
	assert.Equal(t, uint(1), result.SequenceNumber)
}

func Test_Project_ReturnsRequester_AfterTradeCompleted(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRegistered(owner, bookID, 1, "shelf 3", "O'Reilly", "Some Author", "Some Title", now.Add(-2*time.Hour)),
		core.BuildBookArchived(owner, requester, bookID, "traded", true, now),
	}

	// act
	result := ownerof.Project(events, ownerof.BuildQuery(bookID), 2)

	// assert
	assert.Equal(t, core.PartyIDString(requester), result.Owner)
}

func Test_Project_ReturnsZeroParty_WhenBookGone(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	testCases := []struct {
		name   string
		events []core.DomainEvent
		lost   bool
	}{
		{
			name:   "never registered",
			events: nil,
			lost:   false,
		},
		{
			name: "removed",
			events: []core.DomainEvent{
				core.BuildBookRegistered(owner, bookID, 1, "shelf 3", "O'Reilly", "Some Author", "Some Title", now.Add(-1*time.Hour)),
				core.BuildBookRemoved(owner, bookID, true, now),
			},
			lost: false,
		},
		{
			name: "lost in settled dispute",
			events: []core.DomainEvent{
				core.BuildBookRegistered(owner, bookID, 1, "shelf 3", "O'Reilly", "Some Author", "Some Title", now.Add(-1*time.Hour)),
				core.BuildDefenseVerified(owner, requester, bookID, 300, now),
			},
			lost: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := ownerof.Project(tc.events, ownerof.BuildQuery(bookID), uint(len(tc.events)))

			// assert
			assert.Equal(t, core.ZeroParty, result.Owner)
			assert.Equal(t, tc.lost, result.Lost)
		})
	}
}
