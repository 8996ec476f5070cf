package ownerof

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

// BookOwner represents the query result containing the current owner of a book.
type BookOwner struct {
	BookID         core.BookIDString
	Owner          core.PartyIDString
	Registered     bool
	Lost           bool
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r BookOwner) GetSequenceNumber() uint {
	return r.SequenceNumber
}
