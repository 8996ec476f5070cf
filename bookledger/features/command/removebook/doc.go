// Package removebook implements the Remove Book use case.
//
// The minter or the current owner may take a book out of circulation.
// Removal is refused while the book is physically in transit; a settled
// dispute leaves no transmission open, so a lost book's stale registry
// entry can still be cleaned up.
package removebook
