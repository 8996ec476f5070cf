// Package shell contains the infrastructure layer for the book ledger:
// mapping between domain events and storable events, event metadata handling,
// retry logic for optimistic concurrency conflicts, and observability helpers.
//
// The shell is the imperative counterpart to the functional core: it performs
// I/O, serialization, and instrumentation so that the core and the feature
// slices' Decide functions can stay pure.
package shell
