// Package commitbook implements the Commit Book use case.
//
// The holder answers a pending request by naming the escrow amount the
// requester must deposit. Re-committing with a different amount is allowed
// until the deposit arrives; re-committing the same amount is a no-op.
package commitbook
