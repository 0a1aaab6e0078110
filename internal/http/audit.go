package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// AuditLog reads the audit trail.
type AuditLog interface {
	GetEvents(limit, offset int) ([]entities.AuditEvent, int64, error)
	GetEventsByType(eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error)
	GetBookHistory(bookID uint) ([]entities.AuditEvent, error)
}

// CleanupTrigger enqueues an audit retention run.
type CleanupTrigger interface {
	RunNow() (string, error)
}

type AuditController struct {
	log     AuditLog
	cleanup CleanupTrigger
}

// NewAuditController creates an audit controller. cleanup may be nil when the task queue is disabled.
func NewAuditController(log AuditLog, cleanup CleanupTrigger) *AuditController {
	return &AuditController{log: log, cleanup: cleanup}
}

// ListEvents handles GET /api/audit?limit=&offset=&type=.
func (a *AuditController) ListEvents(c *gin.Context) {
	limit, ok := parseIntQuery(c, "limit", 50)
	if !ok {
		return
	}
	offset, ok := parseIntQuery(c, "offset", 0)
	if !ok {
		return
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var (
		events []entities.AuditEvent
		total  int64
		err    error
	)
	if eventType := c.Query("type"); eventType != "" {
		events, total, err = a.log.GetEventsByType(entities.AuditEventType(eventType), limit, offset)
	} else {
		events, total, err = a.log.GetEvents(limit, offset)
	}
	if err != nil {
		respondInternalError(c, err, "list audit events")
		return
	}
	if events == nil {
		events = []entities.AuditEvent{}
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    events,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(events)) < total,
	})
}

// BookHistory handles GET /api/books/:id/history.
func (a *AuditController) BookHistory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	events, err := a.log.GetBookHistory(id)
	if err != nil {
		respondInternalError(c, err, "book history")
		return
	}
	if events == nil {
		events = []entities.AuditEvent{}
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// TriggerCleanup handles POST /api/audit/cleanup.
func (a *AuditController) TriggerCleanup(c *gin.Context) {
	if a.cleanup == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "task queue disabled", Code: "tasks_disabled"})
		return
	}

	taskID, err := a.cleanup.RunNow()
	if err != nil {
		respondInternalError(c, err, "trigger audit cleanup")
		return
	}

	respondAccepted(c, "audit cleanup enqueued", gin.H{"task_id": taskID})
}
