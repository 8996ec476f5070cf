package rejectbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/command/rejectbook"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	holder    = "holder-1"
	requester = "requester-2"
)

func Test_Decide_Success_WhenClaimMatchesDeposit(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := givenShippedCycle(t, bookID, now.Add(-5*time.Hour))

	command := rejectbook.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := rejectbook.Decide(events, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.NoError(t, result.HasError())

	rejected, ok := result.Event.(core.BookRejected)
	assert.True(t, ok, "Expected BookRejected event")
	assert.Equal(t, core.AmountUint(300), rejected.ClaimedAmount)
}

func Test_Decide_Idempotent_WhenDisputeAlreadyOpen(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := append(
		givenShippedCycle(t, bookID, now.Add(-5*time.Hour)),
		core.BuildBookRejected(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	)

	command := rejectbook.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := rejectbook.Decide(events, command)

	// assert - replaying an open rejection is a no-op
	assert.Equal(t, "idempotent", result.Outcome)
	assert.False(t, result.HasEventToAppend())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_WhenNotShipped(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	testCases := []struct {
		name   string
		events []core.DomainEvent
	}{
		{
			name:   "no open cycle",
			events: nil,
		},
		{
			name: "escrow funded but not shipped",
			events: []core.DomainEvent{
				core.BuildBookRequested(holder, requester, bookID, false, now.Add(-3*time.Hour)),
				core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-2*time.Hour)),
				core.BuildEscrowDeposited(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
			},
		},
		{
			name: "already accepted",
			events: append(
				givenShippedCycle(t, bookID, now.Add(-5*time.Hour)),
				core.BuildBookAccepted(holder, requester, bookID, "", now.Add(-1*time.Hour)),
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			command := rejectbook.BuildCommand(holder, requester, bookID, 300, now)

			// act
			result := rejectbook.Decide(tc.events, command)

			// assert
			assert.Equal(t, "error", result.Outcome)
			assert.ErrorIs(t, result.HasError(), core.ErrNotInTransit)
		})
	}
}

func Test_Decide_Error_WhenClaimDoesNotMatchDeposit(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := givenShippedCycle(t, bookID, now.Add(-5*time.Hour))

	for _, claim := range []core.AmountUint{299, 301, 0} {
		command := rejectbook.BuildCommand(holder, requester, bookID, claim, now)

		// act
		result := rejectbook.Decide(events, command)

		// assert
		assert.Equal(t, "error", result.Outcome)
		assert.ErrorIs(t, result.HasError(), core.ErrWrongAmount)
	}
}

func givenShippedCycle(t *testing.T, bookID core.BookIDString, start time.Time) []core.DomainEvent {
	t.Helper()
	return []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, start),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, start.Add(1*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, start.Add(2*time.Hour)),
		core.BuildBookShipped(holder, requester, bookID, start.Add(3*time.Hour)),
	}
}
