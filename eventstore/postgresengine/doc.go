// Package postgresengine implements the custody ledger's event store on
// Postgres. The events live in a single append-only table; a Filter is
// translated into a WHERE clause over the event type column and JSONB
// containment predicates on the payload column.
//
// Append is a guarded insert: a CTE computes the current maximum sequence
// number of the filtered stream and the insert only happens while that number
// still equals the one the caller observed when querying. Zero affected rows
// surface as eventstore.ErrConcurrencyConflict.
//
// Expected schema:
//
//	CREATE TABLE events (
//	    sequence_number BIGSERIAL PRIMARY KEY,
//	    event_type      TEXT                     NOT NULL,
//	    occurred_at     TIMESTAMP WITH TIME ZONE NOT NULL,
//	    payload         JSONB                    NOT NULL,
//	    metadata        JSONB                    NOT NULL
//	);
//	CREATE INDEX events_event_type_idx ON events (event_type);
//	CREATE INDEX events_payload_idx ON events USING GIN (payload jsonb_path_ops);
//
// The engine can be constructed from a pgxpool.Pool, a sqlx.DB or a plain
// sql.DB; all three are exercised by the test suite.
package postgresengine
