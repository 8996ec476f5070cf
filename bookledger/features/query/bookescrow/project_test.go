package bookescrow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/query/bookescrow"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	holder    = "holder-1"
	requester = "requester-2"
)

func Test_Project_ReturnsCommittedAndDepositedAmounts(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-3*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-2*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	// act
	result := bookescrow.Project(events, bookescrow.BuildQuery(holder, requester, bookID), 3)

	// assert
	assert.Equal(t, core.AmountUint(300), result.CommittedAmount)
	assert.Equal(t, core.AmountUint(300), result.DepositedAmount)
	assert.False(t, result.Refunded)
	assert.Equal(t, uint(3), result.SequenceNumber)
}

func Test_Project_ReportsRefundedDepositAsReleased(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, false, now.Add(-6*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-5*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, now.Add(-4*time.Hour)),
		core.BuildBookShipped(holder, requester, bookID, now.Add(-3*time.Hour)),
		core.BuildBookAccepted(holder, requester, bookID, "", now.Add(-2*time.Hour)),
		core.BuildBookArchived(holder, requester, bookID, "", false, now.Add(-90*time.Minute)),
		core.BuildEscrowRefunded(holder, requester, bookID, requester, 300, now.Add(-1*time.Hour)),
	}

	// act
	result := bookescrow.Project(events, bookescrow.BuildQuery(holder, requester, bookID), 7)

	// assert
	assert.True(t, result.Refunded)
	assert.Equal(t, core.AmountUint(0), result.DepositedAmount)
}

func Test_Project_IgnoresOtherTriples(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	otherBook := core.BookIDFromUint(777)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, otherBook, false, now.Add(-2*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, otherBook, 500, now.Add(-1*time.Hour)),
	}

	// act
	result := bookescrow.Project(events, bookescrow.BuildQuery(holder, requester, bookID), 2)

	// assert
	assert.Equal(t, core.AmountUint(0), result.CommittedAmount)
	assert.Equal(t, core.AmountUint(0), result.DepositedAmount)
}
