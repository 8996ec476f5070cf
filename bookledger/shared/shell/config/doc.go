// Package config provides database configuration helpers for PostgreSQL connections
// used by the book ledger.
//
// This package contains factory functions for creating database connections
// using different PostgreSQL drivers (pgx.Pool, sql.DB, sqlx.DB). Connection
// strings are resolved from the environment, with an optional .env file loaded
// via godotenv, falling back to the local test database DSN.
//
// This package is part of the shell (infrastructure) layer, providing
// database connection configuration for the event sourcing system.
package config
