// Package transmissionstatus implements the Transmission Status query use case.
//
// This feature provides a pure query operation that reports whether a book is
// currently in flight from a sender to a receiver. It follows the
// Query-Project pattern without any command processing or event generation.
//
// The direction matters: the outbound leg runs holder to requester and the
// return leg runs requester to holder. A rejected shipment is no longer in
// flight, the dispute path owns it from then on.
package transmissionstatus
