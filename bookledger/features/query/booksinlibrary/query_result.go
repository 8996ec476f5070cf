package booksinlibrary

import (
	"time"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

// BookInfo represents one book currently owned by the queried party.
type BookInfo struct {
	BookID     core.BookIDString
	Title      string
	Author     string
	Publisher  string
	Location   string
	Copies     uint32
	AcquiredAt time.Time
}

// LibraryHoldings represents the query result containing the books a party currently owns.
type LibraryHoldings struct {
	Party          core.PartyIDString
	Books          []BookInfo
	Count          int
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r LibraryHoldings) GetSequenceNumber() uint {
	return r.SequenceNumber
}
