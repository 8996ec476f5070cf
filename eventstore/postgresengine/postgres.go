package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/peershelf/bookledger-go/eventstore"
	"github.com/peershelf/bookledger-go/eventstore/postgresengine/internal/adapters"
)

const (
	defaultEventTableName          = "events"
	logMsgBuildSelectQueryFailed   = "failed to build select query"
	logMsgDBQueryFailed            = "database query execution failed"
	logMsgCloseRowsFailed          = "failed to close database rows"
	logMsgScanRowFailed            = "failed to scan database row"
	logMsgBuildStorableEventFailed = "failed to build storable event from database row"
	logMsgBuildInsertQueryFailed   = "failed to build insert query"
	logMsgDBExecFailed             = "database execution failed during event append"
	logMsgRowsAffectedFailed       = "failed to get rows affected count"
	logMsgQueryCompleted           = "query completed"
	logMsgEventAppended            = "event appended"
	logMsgConcurrencyConflict      = "concurrency conflict detected"
	logMsgSQLExecuted              = "executed sql for: "
	logMsgOperation                = "eventstore operation: "
	logAttrError                   = "error"
	logAttrQuery                   = "query"
	logAttrEventType               = "event_type"
	logAttrEventCount              = "event_count"
	logAttrDurationMS              = "duration_ms"
	logAttrRowsAffected            = "rows_affected"
	logAttrExpectedSequence        = "expected_sequence"
	logActionQuery                 = "query"
	logActionAppend                = "append"
	colEventType                   = "event_type"
	colOccurredAt                  = "occurred_at"
	colPayload                     = "payload"
	colMetadata                    = "metadata"
	colSequenceNumber              = "sequence_number"
	cteContext                     = "context"
	dialectPostgres                = "postgres"
	aliasMaxSeq                    = "max_seq"
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
)

// Logger receives SQL query logging, operational metrics, warnings, and error reports.
// Any slog-shaped logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// EventStore stores and queries the custody ledger's events in a Postgres table.
// It leverages a database adapter and supports customizable logging and event table configuration.
type EventStore struct {
	db             adapters.DBAdapter
	eventTableName string
	logger         Logger
}

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithTableName sets the table name for the EventStore.
func WithTableName(tableName string) Option {
	return func(es *EventStore) error {
		if tableName == "" {
			return eventstore.ErrEmptyEventsTableName
		}

		es.eventTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the EventStore.
//
// Debug level: SQL queries with execution timing (development use)
// Info level: event counts, durations, concurrency conflicts (production-safe)
// Warn level: non-critical issues like cleanup failures
// Error level: failures that abort the operation.
func WithLogger(logger Logger) Option {
	return func(es *EventStore) error {
		es.logger = logger
		return nil
	}
}

type queryResultRow struct {
	eventType         string
	payload           []byte
	metadata          []byte
	occurredAt        time.Time
	maxSequenceNumber eventstore.MaxSequenceNumberUint
}

// NewEventStoreFromPGXPool creates a new EventStore using a pgx Pool with optional configuration.
func NewEventStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapter(db), options...)
}

// NewEventStoreFromSQLDB creates a new EventStore using a sql.DB with optional configuration.
func NewEventStoreFromSQLDB(db *sql.DB, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLAdapter(db), options...)
}

// NewEventStoreFromSQLX creates a new EventStore using a sqlx.DB with optional configuration.
func NewEventStoreFromSQLX(db *sqlx.DB, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLXAdapter(db), options...)
}

func newEventStore(db adapters.DBAdapter, options ...Option) (EventStore, error) {
	es := EventStore{
		db:             db,
		eventTableName: defaultEventTableName,
	}

	for _, option := range options {
		if err := option(&es); err != nil {
			return EventStore{}, err
		}
	}

	return es, nil
}

// Query retrieves the events matching the supplied eventstore.Filter, in
// sequence order, together with the MaxSequenceNumberUint of this stream at
// the time of the query.
func (es EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	var empty eventstore.StorableEvents

	sqlQuery, buildQueryErr := es.buildSelectQuery(filter)
	if buildQueryErr != nil {
		if es.logger != nil {
			es.logger.Error(logMsgBuildSelectQueryFailed, logAttrError, buildQueryErr.Error())
		}

		return empty, 0, buildQueryErr
	}

	rows, duration, queryErr := es.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		return empty, 0, queryErr
	}
	defer es.closeRows(rows)

	eventStream, maxSequenceNumber, scanErr := es.processQueryResults(rows)
	if scanErr != nil {
		return empty, 0, scanErr
	}

	es.logOperation(
		logMsgQueryCompleted,
		logAttrEventCount, len(eventStream),
		logAttrDurationMS, es.durationToMilliseconds(duration))

	return eventStream, maxSequenceNumber, nil
}

// Append attempts to append one eventstore.StorableEvent onto the store,
// respecting the concurrency constraint for the stream selected by the
// provided eventstore.Filter and the expected MaxSequenceNumberUint.
//
// The filter must be the same one used for the Query that preceded the
// business decision; otherwise the guard protects the wrong stream.
//
// Exactly one event per call: every custody protocol operation is a single
// logical transition.
func (es EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
) error {

	sqlQuery, buildQueryErr := es.buildInsertQuery(event, filter, expectedMaxSequenceNumber)
	if buildQueryErr != nil {
		if es.logger != nil {
			es.logger.Error(logMsgBuildInsertQueryFailed, logAttrError, buildQueryErr.Error(), logAttrEventType, event.EventType)
		}

		return buildQueryErr
	}

	rowsAffected, duration, execErr := es.executeAppendQuery(ctx, sqlQuery)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		es.logOperation(
			logMsgConcurrencyConflict,
			logAttrEventType, event.EventType,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
			logAttrRowsAffected, rowsAffected,
		)

		return eventstore.ErrConcurrencyConflict
	}

	es.logOperation(
		logMsgEventAppended,
		logAttrEventType, event.EventType,
		logAttrDurationMS, es.durationToMilliseconds(duration),
	)

	return nil
}

// executeQuery executes the SQL query and returns rows with timing information.
func (es EventStore) executeQuery(ctx context.Context, sqlQuery string) (
	adapters.DBRows,
	time.Duration,
	error,
) {

	start := time.Now()
	rows, queryErr := es.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	es.logQueryWithDuration(sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		if es.logger != nil {
			es.logger.Error(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		}

		return nil, duration, errors.Join(eventstore.ErrQueryingEventsFailed, queryErr)
	}

	return rows, duration, nil
}

// closeRows safely closes database rows and logs any errors.
func (es EventStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if es.logger != nil {
			es.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// processQueryResults converts database rows into storable events.
func (es EventStore) processQueryResults(rows adapters.DBRows) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	var empty eventstore.StorableEvents
	result := queryResultRow{}
	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for rows.Next() {
		rowScanErr := rows.Scan(&result.eventType, &result.occurredAt, &result.payload, &result.metadata, &result.maxSequenceNumber)
		if rowScanErr != nil {
			if es.logger != nil {
				es.logger.Error(logMsgScanRowFailed, logAttrError, rowScanErr.Error())
			}

			return empty, 0, errors.Join(eventstore.ErrScanningDBRowFailed, rowScanErr)
		}

		event, buildStorableErr := eventstore.BuildStorableEvent(result.eventType, result.occurredAt, result.payload, result.metadata)
		if buildStorableErr != nil {
			if es.logger != nil {
				es.logger.Error(logMsgBuildStorableEventFailed, logAttrError, buildStorableErr.Error(), logAttrEventType, result.eventType)
			}

			return empty, 0, errors.Join(eventstore.ErrBuildingStorableEventFailed, buildStorableErr)
		}

		eventStream = append(eventStream, event)
		maxSequenceNumber = result.maxSequenceNumber
	}

	return eventStream, maxSequenceNumber, nil
}

// executeAppendQuery executes the SQL append query and returns rows affected and duration.
func (es EventStore) executeAppendQuery(ctx context.Context, sqlQuery string) (
	rowsAffectedInt64,
	time.Duration,
	error,
) {

	start := time.Now()
	tag, execErr := es.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	es.logQueryWithDuration(sqlQuery, logActionAppend, duration)

	if execErr != nil {
		if es.logger != nil {
			es.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return 0, duration, errors.Join(eventstore.ErrAppendingEventFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := tag.RowsAffected()
	if rowsAffectedErr != nil {
		if es.logger != nil {
			es.logger.Error(logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())
		}

		return 0, duration, errors.Join(eventstore.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, duration, nil
}

func (es EventStore) buildSelectQuery(filter eventstore.Filter) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(es.eventTableName).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	selectStmt = es.addWhereClause(filter, selectStmt)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (es EventStore) buildInsertQuery(
	event eventstore.StorableEvent,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (sqlQueryString, error) {

	builder := goqu.Dialect(dialectPostgres)

	// The CTE computes the observed stream head at insert time.
	cteStmt := builder.
		From(es.eventTableName).
		Select(goqu.MAX(colSequenceNumber).As(aliasMaxSeq))

	cteStmt = es.addWhereClause(filter, cteStmt)

	// The SELECT only yields a row while the stream head is unchanged.
	selectStmt := builder.
		From(cteContext).
		Select(goqu.V(event.EventType), goqu.V(event.OccurredAt), goqu.V(event.PayloadJSON), goqu.V(event.MetadataJSON)).
		Where(goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(goqu.V(expectedMaxSequenceNumber)))

	insertStmt := builder.
		Insert(es.eventTableName).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		FromQuery(selectStmt).
		With(cteContext, cteStmt)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (es EventStore) addWhereClause(filter eventstore.Filter, selectStmt *goqu.SelectDataset) *goqu.SelectDataset {
	if filter.IsEmpty() {
		return selectStmt
	}

	eventTypeExpressions := make([]goqu.Expression, 0)
	predicateExpressions := make([]goqu.Expression, 0)

	for _, eventType := range filter.EventTypes() {
		eventTypeExpressions = append(
			eventTypeExpressions,
			goqu.Ex{colEventType: eventType},
		)
	}

	// event types are always filtered with OR
	eventTypesExpressionList := goqu.Or(eventTypeExpressions...)

	for _, predicate := range filter.Predicates() {
		predicateExpressions = append(
			predicateExpressions,
			goqu.L(fmt.Sprintf(`%s @> '{"%s": "%s"}'`, colPayload, predicate.Key(), predicate.Val())),
		)
	}

	var predicatesExpressionList exp.ExpressionList

	if filter.AllPredicatesMustMatch() {
		predicatesExpressionList = goqu.And(predicateExpressions...)
	} else {
		predicatesExpressionList = goqu.Or(predicateExpressions...)
	}

	return selectStmt.Where(goqu.And(eventTypesExpressionList, predicatesExpressionList))
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (es EventStore) logQueryWithDuration(
	sqlQuery string,
	action string,
	duration time.Duration,
) {

	if es.logger != nil {
		es.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, es.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (es EventStore) logOperation(action string, args ...any) {
	if es.logger != nil {
		es.logger.Info(logMsgOperation+action, args...)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (es EventStore) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
