// Package bookescrow implements the Book Escrow query use case.
//
// This feature provides a pure query operation that returns the escrow state
// of one (holder, requester, book) triple: the amount the holder committed,
// the amount currently locked, and whether the deposit was refunded. It
// follows the Query-Project pattern without any command processing or event
// generation.
package bookescrow
