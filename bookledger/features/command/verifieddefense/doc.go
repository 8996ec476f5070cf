// Package verifieddefense implements the holder's answer to an open dispute.
//
// When a requester has rejected an outbound shipment, the holder can present
// a verified proof of shipment. A successful defense settles the dispute in
// the holder's favor: the locked deposit is awarded to the holder, the
// requester's claim is invalidated, and the book is marked lost. The stated
// amount must match the locked deposit exactly. Replaying a settled defense
// is a no-op. A defense without an open dispute, or after the dispute was
// already settled by a refund, is refused.
package verifieddefense
