// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore: Book persistence and queries (internal/http/books.go)
//   - Pinger: Storage connectivity check (internal/http/health.go)
//
// ## Audit Interfaces
//
//   - BookAuditor: Records book mutations (internal/http/books.go)
//   - AuditLog: Reads the audit trail (internal/http/audit.go)
//   - AuditEventCleaner: Prunes old audit events (internal/tasks/cleanup_audit.go)
//
// ## Background Work Interfaces
//
//   - TaskEnqueuer: Adds tasks to the queue (internal/scheduler/audit_cleanup.go)
//   - CleanupTrigger: Enqueues an audit cleanup on demand (internal/http/audit.go)
//
// # Adding a New Book Query
//
//  1. Add the method to books.Repository in internal/database/books/
//
//     func (r *Repository) FindByCommentContaining(substr string) ([]entities.Book, error)
//
//  2. Extend BookStore in internal/http/books.go and the list handler filters
//
//  3. Cover it in repository_test.go and books_test.go
//
// # Adding a New Background Task
//
//  1. Define the task and its queue in internal/tasks/
//
//     type ReindexTask struct{}
//
//     func (t ReindexTask) Config() backlite.QueueConfig
//
//     func NewReindexQueue(...) backlite.Queue
//
//  2. Register the queue in entrypoint.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
