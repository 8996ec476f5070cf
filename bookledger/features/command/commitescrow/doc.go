// Package commitescrow implements the Commit Escrow use case.
//
// The requester deposits the exact escrow amount the holder committed.
// The deposit must match to the unit; anything else is refused. Once the
// deposit is locked, the holder is cleared to ship.
package commitescrow
