package commitescrow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/command/commitescrow"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	holder    = "holder-1"
	requester = "requester-2"
)

func Test_Decide_Success_WithExactAmount(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-2*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	command := commitescrow.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := commitescrow.Decide(events, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.NoError(t, result.HasError())

	deposited, ok := result.Event.(core.EscrowDeposited)
	assert.True(t, ok, "Expected EscrowDeposited event")
	assert.Equal(t, uint64(300), deposited.Amount)
}

func Test_Decide_Error_WhenAmountDiffers(t *testing.T) {
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-2*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	for _, amount := range []core.AmountUint{299, 301, 0} {
		command := commitescrow.BuildCommand(holder, requester, bookID, amount, now)

		result := commitescrow.Decide(events, command)

		assert.Equal(t, "error", result.Outcome)
		assert.ErrorIs(t, result.HasError(), core.ErrWrongAmount)
	}
}

func Test_Decide_Error_BeforeCommit(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-1*time.Hour)),
	}

	command := commitescrow.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := commitescrow.Decide(events, command)

	// assert
	assert.Equal(t, "error", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrNotCommitted)
}

func Test_Decide_Error_OnDuplicateDeposit(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-3*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-2*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	command := commitescrow.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := commitescrow.Decide(events, command)

	// assert - double funding would inflate the locked amount
	assert.Equal(t, "error", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidState)
}
