package sendbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/command/sendbook"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	holder    = "holder-1"
	requester = "requester-2"
)

func Test_Decide_Success_WhenEscrowFunded(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-3*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-2*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	command := sendbook.BuildCommand(holder, requester, bookID, now)

	// act
	result := sendbook.Decide(events, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.NoError(t, result.HasError())

	shipped, ok := result.Event.(core.BookShipped)
	assert.True(t, ok, "Expected BookShipped event")
	assert.Equal(t, holder, shipped.Holder)
	assert.Equal(t, requester, shipped.Requester)
}

func Test_Decide_Error_BeforeDeposit(t *testing.T) {
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	testCases := []struct {
		name   string
		events []core.DomainEvent
	}{
		{
			name:   "no cycle at all",
			events: nil,
		},
		{
			name: "request only",
			events: []core.DomainEvent{
				core.BuildBookRequested(holder, requester, bookID, false, now.Add(-1*time.Hour)),
			},
		},
		{
			name: "committed but not funded",
			events: []core.DomainEvent{
				core.BuildBookRequested(holder, requester, bookID, false, now.Add(-2*time.Hour)),
				core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			command := sendbook.BuildCommand(holder, requester, bookID, now)

			result := sendbook.Decide(tc.events, command)

			assert.Equal(t, "error", result.Outcome)
			assert.ErrorIs(t, result.HasError(), core.ErrInvalidState)
		})
	}
}

func Test_Decide_Error_WhenAlreadyShipped(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-4*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-3*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, now.Add(-2*time.Hour)),
		core.BuildBookShipped(holder, requester, bookID, now.Add(-1*time.Hour)),
	}

	command := sendbook.BuildCommand(holder, requester, bookID, now)

	// act
	result := sendbook.Decide(events, command)

	// assert - state already moved to in-transit
	assert.Equal(t, "error", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidState)
}
