package refundescrow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/command/refundescrow"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	holder    = "holder-1"
	requester = "requester-2"
)

func Test_Decide_Success_AfterArchivedRental(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := givenArchivedRental(t, bookID, now.Add(-8*time.Hour))

	command := refundescrow.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := refundescrow.Decide(events, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.NoError(t, result.HasError())

	refunded, ok := result.Event.(core.EscrowRefunded)
	assert.True(t, ok, "Expected EscrowRefunded event")
	assert.Equal(t, requester, refunded.Payee, "Deposit goes back to the requester")
	assert.Equal(t, uint64(300), refunded.Amount)
}

func Test_Decide_Success_AfterRefusedReRequest(t *testing.T) {
	// arrange - a third party tried to request the book before the refund;
	// the refusal left only a failure event, so the deposit stays releasable
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := append(
		givenArchivedRental(t, bookID, now.Add(-8*time.Hour)),
		core.BuildCustodyOperationFailed("RequestBook", holder, "third-3", bookID,
			"previous cycle's escrow deposit has not been refunded", now.Add(-1*time.Hour)),
	)

	command := refundescrow.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := refundescrow.Decide(events, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.NoError(t, result.HasError())

	refunded, ok := result.Event.(core.EscrowRefunded)
	assert.True(t, ok, "Expected EscrowRefunded event")
	assert.Equal(t, uint64(300), refunded.Amount)
}

func Test_Decide_Success_SettlingUnansweredDispute(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-5*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-4*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, now.Add(-3*time.Hour)),
		core.BuildBookShipped(holder, requester, bookID, now.Add(-2*time.Hour)),
		core.BuildBookRejected(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	command := refundescrow.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := refundescrow.Decide(events, command)

	// assert - the holder concedes the dispute, the requester gets the deposit back
	assert.Equal(t, "success", result.Outcome)
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_OnReplayedRefund(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := append(
		givenArchivedRental(t, bookID, now.Add(-8*time.Hour)),
		core.BuildEscrowRefunded(holder, requester, bookID, requester, 300, now.Add(-1*time.Hour)),
	)

	command := refundescrow.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := refundescrow.Decide(events, command)

	// assert
	assert.Equal(t, "error", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrAlreadyRefunded)
}

func Test_Decide_Error_MidCycle(t *testing.T) {
	// arrange - deposit locked but the book is still out
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-3*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-2*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	command := refundescrow.BuildCommand(holder, requester, bookID, 300, now)

	// act
	result := refundescrow.Decide(events, command)

	// assert
	assert.Equal(t, "error", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidState)
}

func Test_Decide_Error_WrongAmount(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := givenArchivedRental(t, bookID, now.Add(-8*time.Hour))

	command := refundescrow.BuildCommand(holder, requester, bookID, 299, now)

	// act
	result := refundescrow.Decide(events, command)

	// assert
	assert.Equal(t, "error", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrWrongAmount)
}

func givenArchivedRental(t *testing.T, bookID core.BookIDString, start time.Time) []core.DomainEvent {
	t.Helper()
	return []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, start),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, start.Add(1*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, start.Add(2*time.Hour)),
		core.BuildBookShipped(holder, requester, bookID, start.Add(3*time.Hour)),
		core.BuildBookAccepted(holder, requester, bookID, "", start.Add(4*time.Hour)),
		core.BuildBookReturnShipped(holder, requester, bookID, "", start.Add(5*time.Hour)),
		core.BuildBookArchived(holder, requester, bookID, "", false, start.Add(6*time.Hour)),
	}
}
