package booksinlibrary

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	queryType = "BooksInLibrary"
)

// Query represents the intent to query the books currently owned by a party.
type Query struct {
	Party core.PartyIDString
}

// BuildQuery creates a new Query with the provided party ID.
func BuildQuery(party core.PartyIDString) Query {
	return Query{
		Party: party,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
