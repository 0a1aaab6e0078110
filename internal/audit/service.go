package audit

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/mrlokans/bookshelf/internal/database/audit"
	"github.com/mrlokans/bookshelf/internal/entities"
)

const entityTypeBook = "book"

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	go func() {
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// LogBookCreate records a book insert.
func (s *Service) LogBookCreate(book entities.Book, err error) {
	event := bookEvent(entities.AuditEventCreate, "book_create", "Created book: "+book.Caption, book, err)
	s.LogAsync(event)
}

// LogBookUpdate records a book overwrite.
func (s *Service) LogBookUpdate(book entities.Book, err error) {
	event := bookEvent(entities.AuditEventUpdate, "book_update", "Updated book: "+book.Caption, book, err)
	s.LogAsync(event)
}

// LogBookDelete records a delete-by-id. found is false when the ID was not stored.
func (s *Service) LogBookDelete(bookID uint, found bool, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventDelete,
		Action:      "book_delete",
		Description: fmt.Sprintf("Deleted book %d", bookID),
		EntityType:  entityTypeBook,
		EntityID:    &bookID,
		Status:      entities.AuditStatusSuccess,
	}
	if !found {
		event.Description = fmt.Sprintf("Delete requested for missing book %d", bookID)
	}
	setFailure(event, err)

	s.LogAsync(event)
}

// LogPurge records a delete-all.
func (s *Service) LogPurge(deleted int64, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventPurge,
		Action:      "book_delete_all",
		Description: fmt.Sprintf("Deleted %d books", deleted),
		EntityType:  entityTypeBook,
		Metadata:    marshalMetadata(map[string]any{"deleted": deleted}),
		Status:      entities.AuditStatusSuccess,
	}
	setFailure(event, err)

	s.LogAsync(event)
}

// LogCleanup records an audit retention run. It is written synchronously
// because it runs inside a background task already.
func (s *Service) LogCleanup(deleted int64, retention time.Duration, err error) error {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventCleanup,
		Action:      "audit_cleanup",
		Description: fmt.Sprintf("Removed %d audit events older than %s", deleted, retention),
		Metadata:    marshalMetadata(map[string]any{"deleted": deleted, "retention": retention.String()}),
		Status:      entities.AuditStatusSuccess,
	}
	setFailure(event, err)

	return s.Log(event)
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (s *Service) GetEventsByType(eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsByType(eventType, limit, offset)
}

// GetBookHistory retrieves every event recorded for a single book.
func (s *Service) GetBookHistory(bookID uint) ([]entities.AuditEvent, error) {
	return s.repo.GetEventsForEntity(entityTypeBook, bookID)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

func bookEvent(eventType entities.AuditEventType, action, description string, book entities.Book, err error) *entities.AuditEvent {
	event := &entities.AuditEvent{
		EventType:   eventType,
		Action:      action,
		Description: truncate(description, 500),
		EntityType:  entityTypeBook,
		Metadata: marshalMetadata(map[string]any{
			"caption": book.Caption,
			"rated":   book.Rated,
		}),
		Status: entities.AuditStatusSuccess,
	}
	if book.ID != 0 {
		id := book.ID
		event.EntityID = &id
	}
	setFailure(event, err)
	return event
}

func setFailure(event *entities.AuditEvent, err error) {
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
}

func marshalMetadata(metadata map[string]any) string {
	mdBytes, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(mdBytes)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
