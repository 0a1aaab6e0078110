package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/audit"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

type stubTrigger struct {
	id  string
	err error
}

func (s stubTrigger) RunNow() (string, error) { return s.id, s.err }

func setupFullRouter(t *testing.T, trigger CleanupTrigger) (*gin.Engine, *database.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabaseWithLogLevel(filepath.Join(t.TempDir(), "router.db"), logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	auditService := audit.NewService(db.Audit())
	router := NewRouter(RouterConfig{
		BookStore:      db.Books(),
		Pinger:         db,
		AuditLog:       auditService,
		BookAuditor:    auditService,
		CleanupTrigger: trigger,
		Version:        "test",
	})
	return router, db
}

func TestNewRouter_BookLifecycle(t *testing.T) {
	router, _ := setupFullRouter(t, nil)

	w := doJSON(router, "POST", "/api/books", BookRequest{Caption: "Tut#1", Comment: "Desc#1", Rated: true})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var created entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, "PUT", "/api/books/"+itoa(created.ID), BookRequest{Caption: "Tut#1 v2", Rated: false})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "DELETE", "/api/books/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Audit writes are asynchronous
	var history struct {
		Events []entities.AuditEvent `json:"events"`
		Count  int                   `json:"count"`
	}
	require.Eventually(t, func() bool {
		w = doJSON(router, "GET", "/api/books/"+itoa(created.ID)+"/history", nil)
		if w.Code != http.StatusOK {
			return false
		}
		return json.Unmarshal(w.Body.Bytes(), &history) == nil && history.Count == 3
	}, 2*time.Second, 20*time.Millisecond)

	types := make([]entities.AuditEventType, 0, 3)
	for _, e := range history.Events {
		types = append(types, e.EventType)
	}
	assert.ElementsMatch(t, []entities.AuditEventType{
		entities.AuditEventCreate,
		entities.AuditEventUpdate,
		entities.AuditEventDelete,
	}, types)
}

func TestNewRouter_Health(t *testing.T) {
	router, _ := setupFullRouter(t, nil)

	w := doJSON(router, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version": "test"`)
}

func TestAuditController_ListEvents(t *testing.T) {
	router, db := setupFullRouter(t, nil)

	auditRepo := db.Audit()
	for i := 0; i < 3; i++ {
		require.NoError(t, auditRepo.LogEvent(&entities.AuditEvent{EventType: entities.AuditEventCreate, Action: "book_create"}))
	}
	require.NoError(t, auditRepo.LogEvent(&entities.AuditEvent{EventType: entities.AuditEventPurge, Action: "book_delete_all"}))

	t.Run("paginates", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/audit?limit=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response PaginatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(4), response.Total)
		assert.Equal(t, 2, response.Limit)
		assert.True(t, response.HasMore)
	})

	t.Run("filters by type", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/audit?type=purge", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response PaginatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(1), response.Total)
		assert.False(t, response.HasMore)
	})

	t.Run("rejects bad offset", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/audit?offset=x", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuditController_TriggerCleanup(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		router, _ := setupFullRouter(t, stubTrigger{id: "task-42"})

		w := doJSON(router, "POST", "/api/audit/cleanup", nil)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), "task-42")
	})

	t.Run("queue disabled", func(t *testing.T) {
		router, _ := setupFullRouter(t, nil)

		w := doJSON(router, "POST", "/api/audit/cleanup", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("enqueue failure", func(t *testing.T) {
		router, _ := setupFullRouter(t, stubTrigger{err: errors.New("closed")})

		w := doJSON(router, "POST", "/api/audit/cleanup", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
