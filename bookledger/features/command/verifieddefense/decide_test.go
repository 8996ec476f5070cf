package verifieddefense_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/command/verifieddefense"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	holder    = "holder-1"
	requester = "requester-2"
)

func Test_Decide_Success_WhenDisputeIsOpen(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := givenDisputedCycle(t, bookID, now.Add(-6*time.Hour))

	command := verifieddefense.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := verifieddefense.Decide(events, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.NoError(t, result.HasError())

	verified, ok := result.Event.(core.DefenseVerified)
	assert.True(t, ok, "Expected DefenseVerified event")
	assert.Equal(t, core.AmountUint(300), verified.Amount)
}

func Test_Decide_Idempotent_WhenDefenseAlreadySettled(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := append(
		givenDisputedCycle(t, bookID, now.Add(-6*time.Hour)),
		core.BuildDefenseVerified(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	)

	command := verifieddefense.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := verifieddefense.Decide(events, command)

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.False(t, result.HasEventToAppend())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_WhenNoDisputeOnFile(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	testCases := []struct {
		name   string
		events []core.DomainEvent
	}{
		{
			name: "shipment still in transit",
			events: []core.DomainEvent{
				core.BuildBookRequested(holder, requester, bookID, false, now.Add(-4*time.Hour)),
				core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-3*time.Hour)),
				core.BuildEscrowDeposited(holder, requester, bookID, 300, now.Add(-2*time.Hour)),
				core.BuildBookShipped(holder, requester, bookID, now.Add(-1*time.Hour)),
			},
		},
		{
			name: "dispute already settled by refund",
			events: append(
				givenDisputedCycle(t, bookID, now.Add(-6*time.Hour)),
				core.BuildEscrowRefunded(holder, requester, bookID, requester, 300, now.Add(-1*time.Hour)),
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			command := verifieddefense.BuildCommand(holder, requester, bookID, 300, now)

			// act
			result := verifieddefense.Decide(tc.events, command)

			// assert
			assert.Equal(t, "error", result.Outcome)
			assert.ErrorIs(t, result.HasError(), core.ErrNoDispute)
		})
	}
}

func Test_Decide_Error_WhenAmountDoesNotMatchDeposit(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := givenDisputedCycle(t, bookID, now.Add(-6*time.Hour))

	for _, amount := range []core.AmountUint{299, 301, 0} {
		command := verifieddefense.BuildCommand(holder, requester, bookID, amount, now)

		// act
		result := verifieddefense.Decide(events, command)

		// assert
		assert.Equal(t, "error", result.Outcome)
		assert.ErrorIs(t, result.HasError(), core.ErrWrongAmount)
	}
}

func givenDisputedCycle(t *testing.T, bookID core.BookIDString, start time.Time) []core.DomainEvent {
	t.Helper()
	return []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, start),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, start.Add(1*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, start.Add(2*time.Hour)),
		core.BuildBookShipped(holder, requester, bookID, start.Add(3*time.Hour)),
		core.BuildBookRejected(holder, requester, bookID, 300, start.Add(4*time.Hour)),
	}
}
