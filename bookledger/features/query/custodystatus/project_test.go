package custodystatus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/query/custodystatus"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	holder    = "holder-1"
	requester = "requester-2"
)

func Test_Project_WalksTheFullRentalCycle(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	start := time.Now().Add(-8 * time.Hour)

	steps := []struct {
		event         core.DomainEvent
		expectedState string
	}{
		{core.BuildBookRequested(holder, requester, bookID, false, start), "Requested"},
		{core.BuildEscrowCommitted(holder, requester, bookID, 300, start.Add(1 * time.Hour)), "Committed"},
		{core.BuildEscrowDeposited(holder, requester, bookID, 300, start.Add(2 * time.Hour)), "EscrowFunded"},
		{core.BuildBookShipped(holder, requester, bookID, start.Add(3 * time.Hour)), "InTransitOutbound"},
		{core.BuildBookAccepted(holder, requester, bookID, "", start.Add(4 * time.Hour)), "HeldByRecipient"},
		{core.BuildBookReturnShipped(holder, requester, bookID, "", start.Add(5 * time.Hour)), "InTransitReturn"},
		{core.BuildBookArchived(holder, requester, bookID, "", false, start.Add(6 * time.Hour)), "Archived"},
	}

	events := make([]core.DomainEvent, 0, len(steps))
	query := custodystatus.BuildQuery(holder, requester, bookID)

	for _, step := range steps {
		events = append(events, step.event)

		// act
		result := custodystatus.Project(events, query, uint(len(events)))

		// assert
		assert.Equal(t, step.expectedState, result.State)
	}
}

func Test_Project_ExposesEscrowAndDisputeFlags(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now()

	events := []core.DomainEvent{
		core.BuildBookRequested(holder, requester, bookID, true, now.Add(-5*time.Hour)),
		core.BuildEscrowCommitted(holder, requester, bookID, 300, now.Add(-4*time.Hour)),
		core.BuildEscrowDeposited(holder, requester, bookID, 300, now.Add(-3*time.Hour)),
		core.BuildBookShipped(holder, requester, bookID, now.Add(-2*time.Hour)),
		core.BuildBookRejected(holder, requester, bookID, 300, now.Add(-1*time.Hour)),
	}

	// act
	result := custodystatus.Project(events, custodystatus.BuildQuery(holder, requester, bookID), 5)

	// assert
	assert.Equal(t, "Disputed", result.State)
	assert.True(t, result.Permanent)
	assert.True(t, result.DisputeFiled)
	assert.False(t, result.OutboundInTransit, "rejection takes the shipment out of flight")
	assert.Equal(t, core.AmountUint(300), result.CommittedAmount)
	assert.Equal(t, core.AmountUint(300), result.DepositedAmount)
	assert.False(t, result.Refunded)
}

func Test_Project_ReturnsIdleState_ForUnknownTriple(t *testing.T) {
	// act
	result := custodystatus.Project(nil, custodystatus.BuildQuery(holder, requester, core.BookIDFromUint(1)), 0)

	// assert
	assert.Equal(t, "Idle", result.State)
	assert.Equal(t, uint(0), result.SequenceNumber)
}
