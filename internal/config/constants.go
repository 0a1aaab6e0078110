package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./bookshelf.db"

	// DefaultAuditCleanupSchedule runs the audit retention job daily at 03:00
	DefaultAuditCleanupSchedule = "0 3 * * *"
)
