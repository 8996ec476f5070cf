// Package returnbook implements the Return Book use case.
//
// A rented book goes back: the requester ships it to the holder, opening
// the return transmission. Permanent trades never return.
package returnbook
