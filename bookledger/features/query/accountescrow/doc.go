// Package accountescrow implements the Account Escrow query use case.
//
// This feature provides a pure query operation that returns the total value a
// party currently has locked in escrow across all books and holders. It
// follows the Query-Project pattern without any command processing or event
// generation.
//
// Deposits count when the party made them as the requester of a cycle; they
// stop counting once refunded, or once a verified defense awarded them to the
// holder.
package accountescrow
