package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BookStore BookStore
	Pinger    Pinger

	// Audit trail (optional)
	AuditLog       AuditLog
	BookAuditor    BookAuditor
	CleanupTrigger CleanupTrigger

	// Application info
	Version string
}
