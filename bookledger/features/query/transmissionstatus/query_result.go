package transmissionstatus

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

// TransmissionStatus represents the query result reporting whether a book is
// in flight from the sender to the receiver.
type TransmissionStatus struct {
	Sender         core.PartyIDString
	Receiver       core.PartyIDString
	BookID         core.BookIDString
	InTransit      bool
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r TransmissionStatus) GetSequenceNumber() uint {
	return r.SequenceNumber
}
