package eventstore

import (
	"errors"
)

var (
	// ErrEmptyEventsTableName is returned when an engine is configured with an empty table name.
	ErrEmptyEventsTableName = errors.New("empty events table name supplied")

	// ErrNilDatabaseConnection is returned when an engine is constructed from a nil connection (pool).
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrConcurrencyConflict is returned by Append when the guarded insert affected no rows,
	// meaning the stream was modified after it was queried. The operation must be retried
	// against the fresh stream state.
	ErrConcurrencyConflict = errors.New("concurrency conflict, no rows were affected")

	// ErrBuildingQueryFailed is returned when SQL generation fails.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingEventsFailed is returned when the select statement fails to execute.
	ErrQueryingEventsFailed = errors.New("querying events failed")

	// ErrScanningDBRowFailed is returned when a result row cannot be scanned.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")

	// ErrBuildingStorableEventFailed is returned when a result row holds invalid event data.
	ErrBuildingStorableEventFailed = errors.New("building storable event from database row failed")

	// ErrAppendingEventFailed is returned when the insert statement fails to execute.
	ErrAppendingEventFailed = errors.New("appending event failed")

	// ErrGettingRowsAffectedFailed is returned when the affected row count cannot be determined.
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
)

// MaxSequenceNumberUint is the maximum sequence number a filter matched at query time.
// It is the concurrency guard for the subsequent Append.
type MaxSequenceNumberUint = uint
