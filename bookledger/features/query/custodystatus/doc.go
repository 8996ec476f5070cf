// Package custodystatus implements the Custody Status query use case.
//
// This feature provides a pure query operation that exposes the full custody
// state of one (holder, requester, book) triple: the state tag of the cycle,
// the escrow amounts, the transmission flags and the dispute flag. It follows
// the Query-Project pattern without any command processing or event
// generation, and is primarily a diagnostics view.
package custodystatus
