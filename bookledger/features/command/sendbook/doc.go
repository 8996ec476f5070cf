// Package sendbook implements the Send Book use case.
//
// Once the escrow deposit is locked, the holder ships the book to the
// requester, opening the outbound transmission.
package sendbook
