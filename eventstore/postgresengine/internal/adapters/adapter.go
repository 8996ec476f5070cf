// Package adapters hides the differences between the supported database
// access libraries (pgx pool, sqlx, database/sql) behind one minimal
// interface so the engine builds and runs the same SQL against any of them.
package adapters

import "context"

// DBAdapter defines the database operations the event store needs.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
