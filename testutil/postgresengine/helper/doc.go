// Package helper provides testing utilities for PostgreSQL event store testing.
//
// This package contains shared testing infrastructure: unique id generation,
// event fixtures for the custody domain, and given-helpers that append
// arranged events to the store, used across the PostgreSQL test suite.
package helper
