package refundescrow_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/features/command/acceptbook"
	"github.com/peershelf/bookledger-go/bookledger/features/command/archivebook"
	"github.com/peershelf/bookledger-go/bookledger/features/command/commitbook"
	"github.com/peershelf/bookledger-go/bookledger/features/command/commitescrow"
	"github.com/peershelf/bookledger-go/bookledger/features/command/refundescrow"
	"github.com/peershelf/bookledger-go/bookledger/features/command/registerbook"
	"github.com/peershelf/bookledger-go/bookledger/features/command/requestbook"
	"github.com/peershelf/bookledger-go/bookledger/features/command/returnbook"
	"github.com/peershelf/bookledger-go/bookledger/features/command/sendbook"
	"github.com/peershelf/bookledger-go/bookledger/features/query/accountescrow"
	"github.com/peershelf/bookledger-go/bookledger/features/query/custodystatus"
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	. "github.com/peershelf/bookledger-go/testutil/postgresengine/helper"                 //nolint:revive
	. "github.com/peershelf/bookledger-go/testutil/postgresengine/helper/postgreswrapper" //nolint:revive
)

//nolint:funlen
func Test_CommandHandler_Handle_FullRentalCycleEndsWithRefund(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	es := wrapper.GetEventStore()

	// arrange
	CleanUp(t, wrapper)
	holder := GivenUniqueParty(t)
	requester := GivenUniqueParty(t)
	stranger := GivenUniqueParty(t)
	bookID := GivenUniqueBookID(t)
	fakeClock := time.Unix(0, 0).UTC()

	registerHandler := registerbook.NewCommandHandler(es, holder)
	requestHandler := requestbook.NewCommandHandler(es)
	commitHandler := commitbook.NewCommandHandler(es)
	depositHandler := commitescrow.NewCommandHandler(es)
	sendHandler := sendbook.NewCommandHandler(es)
	acceptHandler := acceptbook.NewCommandHandler(es)
	returnHandler := returnbook.NewCommandHandler(es)
	archiveHandler := archivebook.NewCommandHandler(es)
	refundHandler := refundescrow.NewCommandHandler(es)

	// act / assert - walk the full rental cycle
	registerCmd := registerbook.BuildCommand(holder, bookID, 1, "shelf 3", "O'Reilly", "Vlad Khononov", "Learning Domain-Driven Design", fakeClock)
	_, err := registerHandler.Handle(ctxWithTimeout, registerCmd)
	assert.NoError(t, err, "Should register the book")

	requestCmd := requestbook.BuildCommand(holder, requester, bookID, false, fakeClock.Add(time.Hour))
	_, err = requestHandler.Handle(ctxWithTimeout, requestCmd)
	assert.NoError(t, err, "Should request the book")

	commitCmd := commitbook.BuildCommand(holder, requester, bookID, 300, fakeClock.Add(2*time.Hour))
	_, err = commitHandler.Handle(ctxWithTimeout, commitCmd)
	assert.NoError(t, err, "Should commit the escrow amount")

	depositCmd := commitescrow.BuildCommand(holder, requester, bookID, 300, fakeClock.Add(3*time.Hour))
	_, err = depositHandler.Handle(ctxWithTimeout, depositCmd)
	assert.NoError(t, err, "Should deposit the escrow")

	// a third party cannot open a cycle while this one is running
	strangerCmd := requestbook.BuildCommand(holder, stranger, bookID, false, fakeClock.Add(3*time.Hour+time.Minute))
	_, err = requestHandler.Handle(ctxWithTimeout, strangerCmd)
	assert.ErrorIs(t, err, core.ErrAssetBusy, "A second open cycle must be refused")

	sendCmd := sendbook.BuildCommand(holder, requester, bookID, fakeClock.Add(4*time.Hour))
	_, err = sendHandler.Handle(ctxWithTimeout, sendCmd)
	assert.NoError(t, err, "Should ship the book")

	acceptCmd := acceptbook.BuildCommand(holder, requester, bookID, "arrived in good shape", fakeClock.Add(5*time.Hour))
	_, err = acceptHandler.Handle(ctxWithTimeout, acceptCmd)
	assert.NoError(t, err, "Should accept the book")

	returnCmd := returnbook.BuildCommand(holder, requester, bookID, "returning on time", fakeClock.Add(6*time.Hour))
	_, err = returnHandler.Handle(ctxWithTimeout, returnCmd)
	assert.NoError(t, err, "Should ship the book back")

	archiveCmd := archivebook.BuildCommand(holder, holder, requester, bookID, "all good", fakeClock.Add(7*time.Hour))
	_, err = archiveHandler.Handle(ctxWithTimeout, archiveCmd)
	assert.NoError(t, err, "Should archive the rental")

	refundCmd := refundescrow.BuildCommand(holder, requester, bookID, 300, fakeClock.Add(8*time.Hour))
	_, err = refundHandler.Handle(ctxWithTimeout, refundCmd)
	assert.NoError(t, err, "Should refund the deposit")

	// assert - the cycle is settled
	statusHandler := custodystatus.NewQueryHandler(es)
	status, err := statusHandler.Handle(ctxWithTimeout, custodystatus.BuildQuery(holder, requester, bookID))
	assert.NoError(t, err, "Status query should succeed")
	assert.Equal(t, "Archived", status.State)
	assert.True(t, status.Refunded)
	assert.Equal(t, core.AmountUint(0), status.DepositedAmount)

	escrowHandler := accountescrow.NewQueryHandler(es)
	account, err := escrowHandler.Handle(ctxWithTimeout, accountescrow.BuildQuery(requester))
	assert.NoError(t, err, "Account escrow query should succeed")
	assert.Equal(t, core.AmountUint(0), account.TotalLocked, "Nothing stays locked after the refund")
}

func Test_CommandHandler_Handle_RefusesReplayedRefund(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wrapper := CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	es := wrapper.GetEventStore()

	// arrange
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
	GivenBookAcceptedWasAppended(t, ctxWithTimeout, es, holder, requester, bookID, fakeClock.Add(5*time.Hour))

	returnHandler := returnbook.NewCommandHandler(es)
	_, err := returnHandler.Handle(ctxWithTimeout, returnbook.BuildCommand(holder, requester, bookID, "", fakeClock.Add(6*time.Hour)))
	assert.NoError(t, err, "Should ship the book back")

	archiveHandler := archivebook.NewCommandHandler(es)
	_, err = archiveHandler.Handle(ctxWithTimeout, archivebook.BuildCommand(holder, holder, requester, bookID, "", fakeClock.Add(7*time.Hour)))
	assert.NoError(t, err, "Should archive the rental")

	refundHandler := refundescrow.NewCommandHandler(es)
	_, err = refundHandler.Handle(ctxWithTimeout, refundescrow.BuildCommand(holder, requester, bookID, 300, fakeClock.Add(8*time.Hour)))
	assert.NoError(t, err, "Should refund the deposit")

	// act - replay the refund
	result, err := refundHandler.Handle(ctxWithTimeout, refundescrow.BuildCommand(holder, requester, bookID, 300, fakeClock.Add(9*time.Hour)))

	// assert
	assert.ErrorIs(t, err, core.ErrAlreadyRefunded)
	assert.False(t, result.Idempotent)
}
