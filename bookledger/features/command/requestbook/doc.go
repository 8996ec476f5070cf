// Package requestbook implements the Request Book use case.
//
// A requester asks the current holder for a book, either as a rental or as
// a permanent trade. Only one custody cycle can be open per book, so a
// request is refused while any other cycle or transmission is in flight.
// Repeating an identical pending request is a no-op.
package requestbook
