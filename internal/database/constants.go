package database

import "time"

// Pool sizing defaults
const (
	DefaultMaxConnections = 25
	DefaultMinConnections = 2
	DefaultMaxConnIdle    = 5 * time.Minute
	DefaultMaxConnLife    = 30 * time.Minute
)

// Error message constants
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log message constants
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
