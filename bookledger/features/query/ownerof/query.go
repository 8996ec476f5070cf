package ownerof

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	queryType = "OwnerOf"
)

// Query represents the intent to query the current owner of a book.
type Query struct {
	BookID core.BookIDString
}

// BuildQuery creates a new Query with the provided book ID.
func BuildQuery(bookID core.BookIDString) Query {
	return Query{
		BookID: bookID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
