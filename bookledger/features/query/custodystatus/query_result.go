package custodystatus

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

// CustodyStatus represents the query result exposing the custody state of one
// (holder, requester, book) triple.
type CustodyStatus struct {
	Holder            core.PartyIDString
	Requester         core.PartyIDString
	BookID            core.BookIDString
	State             string
	Permanent         bool
	CommittedAmount   core.AmountUint
	DepositedAmount   core.AmountUint
	Refunded          bool
	OutboundInTransit bool
	ReturnInTransit   bool
	DisputeFiled      bool
	SequenceNumber    uint
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r CustodyStatus) GetSequenceNumber() uint {
	return r.SequenceNumber
}
