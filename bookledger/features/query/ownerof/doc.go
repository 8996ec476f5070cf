// Package ownerof implements the Owner Of query use case.
//
// This feature provides a pure query operation that returns the current owner
// of a book. It follows the Query-Project pattern without any command
// processing or event generation.
//
// The query returns a BookOwner struct with the owner's party id, or the zero
// party when the book was never registered, was removed, or was lost in a
// settled dispute.
package ownerof
