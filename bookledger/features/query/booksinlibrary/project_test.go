package booksinlibrary_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/query/booksinlibrary"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	alice = "party-alice"
	bob   = "party-bob"
)

func Test_Project_CountsOwnedBooks(t *testing.T) {
	// arrange
	book1 := core.BookIDFromUint(1001)
	book2 := core.BookIDFromUint(1002)
	book3 := core.BookIDFromUint(1003)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRegistered(alice, book1, 1, "shelf 1", "Pub", "Author", "First", now.Add(-3*time.Hour)),
		core.BuildBookRegistered(alice, book2, 1, "shelf 1", "Pub", "Author", "Second", now.Add(-2*time.Hour)),
		core.BuildBookRegistered(bob, book3, 1, "shelf 2", "Pub", "Author", "Third", now.Add(-1*time.Hour)),
	}

	// act
	result := booksinlibrary.Project(events, booksinlibrary.BuildQuery(alice), 3)

	// assert
	assert.Equal(t, 2, result.Count)
	assert.Len(t, result.Books, 2)

	// Sorted by AcquiredAt (oldest first)
	assert.Equal(t, book1, result.Books[0].BookID)
	assert.Equal(t, "First", result.Books[0].Title)
	assert.Equal(t, book2, result.Books[1].BookID)
	assert.Equal(t, uint(3), result.SequenceNumber)
}

func Test_Project_TracksOwnershipThroughTradesAndRemovals(t *testing.T) {
	// arrange
	book1 := core.BookIDFromUint(1001)
	book2 := core.BookIDFromUint(1002)
	book3 := core.BookIDFromUint(1003)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRegistered(alice, book1, 1, "shelf 1", "Pub", "Author", "Traded", now.Add(-6*time.Hour)),
		core.BuildBookRegistered(alice, book2, 1, "shelf 1", "Pub", "Author", "Removed", now.Add(-5*time.Hour)),
		core.BuildBookRegistered(alice, book3, 1, "shelf 1", "Pub", "Author", "Lost", now.Add(-4*time.Hour)),
		// book1 traded to bob
		core.BuildBookArchived(alice, bob, book1, "traded", true, now.Add(-3*time.Hour)),
		// book2 removed from the ledger
		core.BuildBookRemoved(alice, book2, true, now.Add(-2*time.Hour)),
		// book3 lost in a settled dispute
		core.BuildDefenseVerified(alice, bob, book3, 300, now.Add(-1*time.Hour)),
	}

	// act
	aliceHoldings := booksinlibrary.Project(events, booksinlibrary.BuildQuery(alice), 6)
	bobHoldings := booksinlibrary.Project(events, booksinlibrary.BuildQuery(bob), 6)

	// assert
	assert.Equal(t, 0, aliceHoldings.Count, "Alice traded, removed or lost all her books")

	assert.Equal(t, 1, bobHoldings.Count, "Bob received book1 in the trade")
	assert.Equal(t, book1, bobHoldings.Books[0].BookID)
	assert.Equal(t, "Traded", bobHoldings.Books[0].Title)
}

func Test_Project_ReturnsEmptyHoldings_WhenPartyOwnsNothing(t *testing.T) {
	// act
	result := booksinlibrary.Project(nil, booksinlibrary.BuildQuery(alice), 0)

	// assert
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Books)
}
