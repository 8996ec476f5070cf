// Package acceptbook implements the Accept Book use case.
//
// The requester confirms physical receipt of the shipped book, closing the
// outbound transmission and taking custody.
package acceptbook
