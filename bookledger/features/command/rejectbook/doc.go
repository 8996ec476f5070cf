// Package rejectbook implements the Reject Book use case.
//
// While a shipment is in outbound transit, the requester may dispute it:
// the book never arrived or is not what was promised. The claimed amount
// must match the locked deposit exactly. A rejection freezes the cycle until
// the holder concedes (refund) or proves delivery (verified defense).
// Replaying an open rejection is a no-op.
package rejectbook
