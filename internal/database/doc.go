// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── books/           # Book CRUD and filtered queries
//	└── audit/           # Audit event storage
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase("./bookshelf.db")
//	booksRepo := books.NewRepository(db.DB)
//	auditRepo := audit.NewRepository(db.DB)
//
//	saved, err := booksRepo.Save(entities.NewBook("Tut#1", "Desc#1", true))
//	rated, err := booksRepo.FindByRated(true)
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Register the entity in NewDatabase's AutoMigrate call
//  5. Add compile-time interface check in internal/interfaces/checks.go
package database
