package removebook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/command/removebook"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	minter    = "minter-5"
	requester = "requester-1"
)

func Test_Decide_Success_WhenOwnerRemovesIdleBook(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		givenBookRegistered(t, bookID, now.Add(-1*time.Hour)),
	}

	command := removebook.BuildCommand(minter, bookID, false, now)

	// act
	result := removebook.Decide(events, command, minter)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.NoError(t, result.HasError())

	removed, ok := result.Event.(core.BookRemoved)
	assert.True(t, ok, "Expected BookRemoved event")
	assert.Equal(t, minter, removed.Owner)
}

func Test_Decide_Success_AfterDisputeSettledAsLost(t *testing.T) {
	// arrange - a verified defense leaves the book lost with no open transmission
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		givenBookRegistered(t, bookID, now.Add(-7*time.Hour)),
		core.BuildBookRequested(minter, requester, bookID, false, now.Add(-6*time.Hour)),
		core.BuildEscrowCommitted(minter, requester, bookID, 300, now.Add(-5*time.Hour)),
		core.BuildEscrowDeposited(minter, requester, bookID, 300, now.Add(-4*time.Hour)),
		core.BuildBookShipped(minter, requester, bookID, now.Add(-3*time.Hour)),
		core.BuildBookRejected(minter, requester, bookID, 300, now.Add(-2*time.Hour)),
		core.BuildDefenseVerified(minter, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	// the defense settles the book as lost but leaves the holder on record,
	// so the holder may still strike it from the registry
	command := removebook.BuildCommand(minter, bookID, false, now)

	// act
	result := removebook.Decide(events, command, minter)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.NoError(t, result.HasError())

	removed, ok := result.Event.(core.BookRemoved)
	assert.True(t, ok, "Expected BookRemoved event")
	assert.Equal(t, minter, removed.Owner)
}

func Test_Decide_Error_WhenActorIsStranger(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		givenBookRegistered(t, bookID, now.Add(-1*time.Hour)),
	}

	command := removebook.BuildCommand("stranger", bookID, false, now)

	// act
	result := removebook.Decide(events, command, minter)

	// assert
	assert.Equal(t, "error", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrUnauthorized)
}

func Test_Decide_Error_WhileBookInTransit(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		givenBookRegistered(t, bookID, now.Add(-5*time.Hour)),
		core.BuildBookRequested(minter, requester, bookID, false, now.Add(-4*time.Hour)),
		core.BuildEscrowCommitted(minter, requester, bookID, 300, now.Add(-3*time.Hour)),
		core.BuildEscrowDeposited(minter, requester, bookID, 300, now.Add(-2*time.Hour)),
		core.BuildBookShipped(minter, requester, bookID, now.Add(-1*time.Hour)),
	}

	command := removebook.BuildCommand(minter, bookID, false, now)

	// act
	result := removebook.Decide(events, command, minter)

	// assert
	assert.Equal(t, "error", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrAssetBusy)
}

func givenBookRegistered(t *testing.T, bookID core.BookIDString, at time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildBookRegistered(minter, bookID, 1, "shelf A", "Publisher", "Author", "Title", at)
}
