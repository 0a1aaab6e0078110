package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Pinger, cfg.Version)
	router.GET("/health", health.Status)

	booksController := NewBooksController(cfg.BookStore, cfg.BookAuditor)

	api := router.Group("/api")
	{
		api.GET("/books", booksController.ListBooks)
		api.POST("/books", booksController.CreateBook)
		api.DELETE("/books", booksController.DeleteAllBooks)
		api.GET("/books/:id", booksController.GetBook)
		api.PUT("/books/:id", booksController.UpdateBook)
		api.DELETE("/books/:id", booksController.DeleteBook)
	}

	if cfg.AuditLog != nil {
		auditController := NewAuditController(cfg.AuditLog, cfg.CleanupTrigger)
		api.GET("/books/:id/history", auditController.BookHistory)
		api.GET("/audit", auditController.ListEvents)
		api.POST("/audit/cleanup", auditController.TriggerCleanup)
	}

	return router
}
