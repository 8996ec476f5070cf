package verifieddefense_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/command/rejectbook"
	"github.com/peershelf/bookledger-go/bookledger/features/command/removebook"
	"github.com/peershelf/bookledger-go/bookledger/features/command/verifieddefense"
	"github.com/peershelf/bookledger-go/bookledger/features/query/ownerof"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	. "github.com/peershelf/bookledger-go/testutil/postgresengine/helper"                 //nolint:revive
	. "github.com/peershelf/bookledger-go/testutil/postgresengine/helper/postgreswrapper" //nolint:revive
)

//nolint:funlen
func Test_CommandHandler_Handle_VerifiedDefenseSettlesDispute(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	es := wrapper.GetEventStore()

	// arrange - an outbound shipment the requester claims never arrived
	CleanUp(t, wrapper)
	holder := GivenUniqueParty(t)
	requester := GivenUniqueParty(t)
	bookID := GivenUniqueBookID(t)
	fakeClock := time.Unix(0, 0).UTC()

	GivenBookRegisteredWasAppended(t, ctxWithTimeout, es, holder, bookID, fakeClock)
	GivenBookRequestedWasAppended(t, ctxWithTimeout, es, holder, requester, bookID, false, fakeClock.Add(time.Hour))
	GivenEscrowCommittedWasAppended(t, ctxWithTimeout, es, holder, requester, bookID, 300, fakeClock.Add(2*time.Hour))
	GivenEscrowDepositedWasAppended(t, ctxWithTimeout, es, holder, requester, bookID, 300, fakeClock.Add(3*time.Hour))
	GivenBookShippedWasAppended(t, ctxWithTimeout, es, holder, requester, bookID, fakeClock.Add(4*time.Hour))

	rejectHandler := rejectbook.NewCommandHandler(es)
	_, err := rejectHandler.Handle(ctxWithTimeout, rejectbook.BuildCommand(holder, requester, bookID, 300, fakeClock.Add(5*time.Hour)))
	assert.NoError(t, err, "Should file the dispute")

	// act - the holder presents a verified proof of shipment
	defenseHandler := verifieddefense.NewCommandHandler(es)
	result, err := defenseHandler.Handle(ctxWithTimeout, verifieddefense.BuildCommand(holder, requester, bookID, 300, fakeClock.Add(6*time.Hour)))

	// assert
	assert.NoError(t, err, "Should settle the dispute in the holder's favor")
	assert.False(t, result.Idempotent)

	// the book is gone from the registry
	ownerHandler := ownerof.NewQueryHandler(es)
	ownerResult, err := ownerHandler.Handle(ctxWithTimeout, ownerof.BuildQuery(bookID))
	assert.NoError(t, err, "Owner query should succeed")
	assert.Equal(t, core.ZeroParty, ownerResult.Owner)
	assert.True(t, ownerResult.Lost)

	// replaying the settled defense is a no-op
	replay, err := defenseHandler.Handle(ctxWithTimeout, verifieddefense.BuildCommand(holder, requester, bookID, 300, fakeClock.Add(7*time.Hour)))
	assert.NoError(t, err)
	assert.True(t, replay.Idempotent)

	// the holder may still strike the lost book from the registry
	removeHandler := removebook.NewCommandHandler(es, holder)
	removeResult, err := removeHandler.Handle(ctxWithTimeout, removebook.BuildCommand(holder, bookID, true, fakeClock.Add(8*time.Hour)))
	assert.NoError(t, err, "Should remove the lost book")
	assert.False(t, removeResult.Idempotent)
}

func Test_CommandHandler_Handle_RefusesDefenseWithoutDispute(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	es := wrapper.GetEventStore()

	// arrange - the shipment is still in transit, no rejection on file
	CleanUp(t, wrapper)
	holder := GivenUniqueParty(t)
	requester := GivenUniqueParty(t)
	bookID := GivenUniqueBookID(t)
	fakeClock := time.Unix(0, 0).UTC()

	GivenBookRegisteredWasAppended(t, ctxWithTimeout, es, holder, bookID, fakeClock)
	GivenBookRequestedWasAppended(t, ctxWithTimeout, es, holder, requester, bookID, false, fakeClock.Add(time.Hour))
	GivenEscrowCommittedWasAppended(t, ctxWithTimeout, es, holder, requester, bookID, 300, fakeClock.Add(2*time.Hour))
	GivenEscrowDepositedWasAppended(t, ctxWithTimeout, es, holder, requester, bookID, 300, fakeClock.Add(3*time.Hour))
	GivenBookShippedWasAppended(t, ctxWithTimeout, es, holder, requester, bookID, fakeClock.Add(4*time.Hour))

	// act
	defenseHandler := verifieddefense.NewCommandHandler(es)
	_, err := defenseHandler.Handle(ctxWithTimeout, verifieddefense.BuildCommand(holder, requester, bookID, 300, fakeClock.Add(5*time.Hour)))

	// assert
	assert.ErrorIs(t, err, core.ErrNoDispute)
}
