// Package booksinlibrary implements the Books In Library query use case.
//
// This feature provides a pure query operation that returns the books a party
// currently owns, and their count. It follows the Query-Project pattern
// without any command processing or event generation.
//
// Ownership follows registration, removal, completed trades and settled
// disputes: a book traded away no longer counts for the previous owner, and a
// book received in a trade counts for the new one.
package booksinlibrary
