package bookescrow

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	queryType = "BookEscrow"
)

// Query represents the intent to query the escrow state of one
// (holder, requester, book) triple.
type Query struct {
	Holder    core.PartyIDString
	Requester core.PartyIDString
	BookID    core.BookIDString
}

// BuildQuery creates a new Query with the provided triple.
func BuildQuery(holder core.PartyIDString, requester core.PartyIDString, bookID core.BookIDString) Query {
	return Query{
		Holder:    holder,
		Requester: requester,
		BookID:    bookID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
