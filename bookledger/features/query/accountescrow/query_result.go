package accountescrow

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

// AccountEscrow represents the query result containing a party's total locked escrow.
type AccountEscrow struct {
	Party          core.PartyIDString
	TotalLocked    core.AmountUint
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r AccountEscrow) GetSequenceNumber() uint {
	return r.SequenceNumber
}
