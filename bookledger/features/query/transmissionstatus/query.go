package transmissionstatus

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	queryType = "TransmissionStatus"
)

// Query represents the intent to query whether a book is in flight from a
// sender to a receiver.
type Query struct {
	Sender   core.PartyIDString
	Receiver core.PartyIDString
	BookID   core.BookIDString
}

// BuildQuery creates a new Query with the provided direction and book ID.
func BuildQuery(sender core.PartyIDString, receiver core.PartyIDString, bookID core.BookIDString) Query {
	return Query{
		Sender:   sender,
		Receiver: receiver,
		BookID:   bookID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
