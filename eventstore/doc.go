// Package eventstore holds the storage-agnostic building blocks of the
// custody ledger's append-only store: the Filter builder used to select the
// event stream of a book (optionally narrowed by party predicates), the
// StorableEvent DTO, and the sentinel errors shared by all engine
// implementations.
//
// A "stream" is not a physical partition: it is whatever set of events the
// Filter matches at query time. Appending is guarded by the maximum sequence
// number the same filter matched when the stream was read, which makes every
// protocol operation an all-or-nothing transition: if anything touched the
// stream in between, the append fails with ErrConcurrencyConflict and no
// partial state is ever written.
package eventstore
