// Package refundescrow implements the Refund Escrow use case.
//
// The holder releases the locked deposit back to the requester, either after
// an archived cycle or to settle an unanswered dispute (which marks the book
// lost). The refund value must exactly match the locked amount, and a deposit
// is only ever released once.
package refundescrow
