package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Migration settings
const (
	DriverName   = "pgx"
	GooseDialect = "postgres"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString   = "failed to parse connection string"
	ErrMsgFailedToCreatePool        = "failed to create connection pool"
	ErrMsgFailedToPingDatabase      = "failed to ping database"
	ErrMsgFailedToOpenMigrationConn = "failed to open sql connection for migrations"
	ErrMsgFailedToSetDialect        = "failed to set goose dialect"
	ErrMsgFailedToRunMigrations     = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
)
