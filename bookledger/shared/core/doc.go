// Package core holds the pure domain of the peer-to-peer book custody
// ledger: the domain events, the explicit custody state machine projected
// per (holder, requester, book) triple, the asset registry projection, the
// error taxonomy, and the DecisionResult type used by the Decide functions
// of the command slices.
//
// Nothing in this package performs I/O; every function is deterministic over
// the supplied event history. The imperative glue lives in the sibling shell
// package.
package core
