package bookescrow

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

// BookEscrow represents the query result containing the escrow state of one
// (holder, requester, book) triple.
type BookEscrow struct {
	Holder          core.PartyIDString
	Requester       core.PartyIDString
	BookID          core.BookIDString
	CommittedAmount core.AmountUint
	DepositedAmount core.AmountUint
	Refunded        bool
	SequenceNumber  uint
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r BookEscrow) GetSequenceNumber() uint {
	return r.SequenceNumber
}
