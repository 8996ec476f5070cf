package core

import "errors"

// The error taxonomy of the custody protocol. Every refused operation wraps
// exactly one of these sentinels, so callers can dispatch with errors.Is.
var (
	// ErrUnauthorized signals a failed role or ownership check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound signals a registry lookup of a book the named owner does not hold.
	ErrNotFound = errors.New("book not found")

	// ErrDuplicateAsset signals registration of a book id that already has an owner.
	ErrDuplicateAsset = errors.New("duplicate asset")

	// ErrSelfRequest signals a holder requesting a book from themselves.
	ErrSelfRequest = errors.New("self request forbidden")

	// ErrSameParty signals a transmission whose sender equals its receiver.
	ErrSameParty = errors.New("sender and receiver are the same party")

	// ErrAssetBusy signals a conflicting in-flight transmission.
	ErrAssetBusy = errors.New("book has an active transmission")

	// ErrInvalidState signals a state-machine precondition violation.
	ErrInvalidState = errors.New("operation not permitted in current custody state")

	// ErrNotInTransit signals accept/reject of a book that is not in outbound transit.
	ErrNotInTransit = errors.New("book is not in transit")

	// ErrNotYetReturned signals archiving a rental before the return transmission.
	ErrNotYetReturned = errors.New("book has not yet been returned")

	// ErrWrongAmount signals an escrow or refund value that does not exactly
	// match the recorded amount.
	ErrWrongAmount = errors.New("amount does not match recorded escrow")

	// ErrNoPendingRequest signals commitBook without a matching request.
	ErrNoPendingRequest = errors.New("no pending request")

	// ErrNotCommitted signals a deposit before the holder committed an escrow amount.
	ErrNotCommitted = errors.New("escrow amount not committed")

	// ErrNoDispute signals a verified defense without a reject on file.
	ErrNoDispute = errors.New("no dispute on file")

	// ErrAlreadyRefunded signals a replayed refund.
	ErrAlreadyRefunded = errors.New("escrow already refunded")
)
