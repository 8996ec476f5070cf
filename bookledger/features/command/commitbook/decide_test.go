package commitbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/command/commitbook"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	holder    = "holder-1"
	requester = "requester-2"
)

func Test_Decide_Success_WhenRequestIsPending(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		givenBookRegistered(t, bookID, now.Add(-2*time.Hour)),
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-1*time.Hour)),
	}

	command := commitbook.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := commitbook.Decide(events, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.NoError(t, result.HasError())

	committed, ok := result.Event.(core.EscrowCommitted)
	assert.True(t, ok, "Expected EscrowCommitted event")
	assert.Equal(t, uint64(300), committed.Amount)
}

func Test_Decide_Success_RecommitWithDifferentAmount(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		givenBookRegistered(t, bookID, now.Add(-3*time.Hour)),
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-2*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	command := commitbook.BuildCommand(holder, requester, bookID, 500, now)

	// act
	result := commitbook.Decide(events, command)

	// assert - the demand is renegotiable until the deposit arrives
	assert.Equal(t, "success", result.Outcome)

	committed, ok := result.Event.(core.EscrowCommitted)
	assert.True(t, ok)
	assert.Equal(t, uint64(500), committed.Amount)
}

func Test_Decide_Idempotent_WhenSameAmountAlreadyCommitted(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		givenBookRegistered(t, bookID, now.Add(-3*time.Hour)),
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-2*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	command := commitbook.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := commitbook.Decide(events, command)

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.Nil(t, result.Event)
}

func Test_Decide_Error_WithoutPendingRequest(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		givenBookRegistered(t, bookID, now.Add(-1*time.Hour)),
	}

	command := commitbook.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := commitbook.Decide(events, command)

	// assert
	assert.Equal(t, "error", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrNoPendingRequest)
}

func Test_Decide_Error_WhenEscrowAlreadyFunded(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		givenBookRegistered(t, bookID, now.Add(-4*time.Hour)),
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-3*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-2*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	command := commitbook.BuildCommand(holder, requester, bookID, 400, now)

	// act
	result := commitbook.Decide(events, command)

	// assert
	assert.Equal(t, "error", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidState)
}

func Test_Decide_Error_WhenHolderDoesNotOwnBook(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	command := commitbook.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := commitbook.Decide(nil, command)

	// assert
	assert.Equal(t, "error", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrUnauthorized)
}

func givenBookRegistered(t *testing.T, bookID core.BookIDString, at time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildBookRegistered(holder, bookID, 1, "shelf A", "Publisher", "Author", "Title", at)
}
