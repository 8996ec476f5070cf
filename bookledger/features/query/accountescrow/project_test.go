package accountescrow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/query/accountescrow"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	holder1   = "holder-1"
	holder2   = "holder-2"
	requester = "requester-3"
)

func Test_Project_SumsLockedDepositsAcrossCycles(t *testing.T) {
	// arrange
	book1 := core.BookIDFromUint(1001)
	book2 := core.BookIDFromUint(1002)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildEscrowDeposited(holder1, requester, book1, 300, now.Add(-2*time.Hour)),
		core.BuildEscrowDeposited(holder2, requester, book2, 450, now.Add(-1*time.Hour)),
	}

	// act
	result := accountescrow.Project(events, accountescrow.BuildQuery(requester), 2)

	// assert
	assert.Equal(t, core.AmountUint(750), result.TotalLocked)
	assert.Equal(t, uint(2), result.SequenceNumber)
}

func Test_Project_ExcludesReleasedDeposits(t *testing.T) {
	// arrange
	book1 := core.BookIDFromUint(1001)
	book2 := core.BookIDFromUint(1002)
	book3 := core.BookIDFromUint(1003)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildEscrowDeposited(holder1, requester, book1, 300, now.Add(-5*time.Hour)),
		core.BuildEscrowDeposited(holder1, requester, book2, 450, now.Add(-4*time.Hour)),
		core.BuildEscrowDeposited(holder2, requester, book3, 200, now.Add(-3*time.Hour)),
		// book1's deposit refunded after a completed rental
		core.BuildEscrowRefunded(holder1, requester, book1, requester, 300, now.Add(-2*time.Hour)),
		// book3's deposit awarded to the holder by a verified defense
		core.BuildDefenseVerified(holder2, requester, book3, 200, now.Add(-1*time.Hour)),
	}

	// act
	result := accountescrow.Project(events, accountescrow.BuildQuery(requester), 5)

	// assert - only book2's deposit is still locked
	assert.Equal(t, core.AmountUint(450), result.TotalLocked)
}

func Test_Project_IgnoresOtherPartiesDeposits(t *testing.T) {
	// arrange
	book1 := core.BookIDFromUint(1001)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildEscrowDeposited(holder1, "someone-else", book1, 300, now),
	}

	// act
	result := accountescrow.Project(events, accountescrow.BuildQuery(requester), 1)

	// assert
	assert.Equal(t, core.AmountUint(0), result.TotalLocked)
}
