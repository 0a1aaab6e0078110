// Package books provides database operations for book management.
//
// This package implements the BookStore interface defined in internal/http/books.go.
//
// # Interface Implementation
//
//	var _ http.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	saved, err := repo.Save(entities.NewBook("Tut#1", "Desc#1", true))
//	book, ok, err := repo.FindByID(saved.ID)
//
// Save never upserts: a book with a non-zero ID must already exist,
// otherwise ErrNotFound is returned.
package books

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindAll retrieves every stored book ordered by ID.
func (r *Repository) FindAll() ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.Order("id ASC").Find(&books).Error
	return books, err
}

// Save inserts a book without an ID or overwrites the stored book with the same ID.
// The returned book is the persisted state.
func (r *Repository) Save(book entities.Book) (*entities.Book, error) {
	if !book.IsPersisted() {
		if err := r.db.Create(&book).Error; err != nil {
			return nil, err
		}
		return &book, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing entities.Book
		if err := tx.First(&existing, book.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrNotFound, book.ID)
			}
			return err
		}
		book.CreatedAt = existing.CreatedAt
		return tx.Save(&book).Error
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// FindByID retrieves a book by ID. A miss is reported with ok == false and a nil error.
func (r *Repository) FindByID(id uint) (entities.Book, bool, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Book{}, false, nil
	}
	if err != nil {
		return entities.Book{}, false, err
	}
	return book, true, nil
}

// FindByRated retrieves books whose rated flag equals the argument.
func (r *Repository) FindByRated(rated bool) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.Where("rated = ?", rated).Order("id ASC").Find(&books).Error
	return books, err
}

// FindByCaptionContaining retrieves books whose caption contains substr (case-sensitive).
func (r *Repository) FindByCaptionContaining(substr string) ([]entities.Book, error) {
	if substr == "" {
		return nil, fmt.Errorf("%w: empty caption filter", ErrInvalidArgument)
	}

	// instr is case-sensitive and treats % and _ literally, unlike LIKE.
	books := []entities.Book{}
	err := r.db.Where("instr(caption, ?) > 0", substr).Order("id ASC").Find(&books).Error
	return books, err
}

// DeleteByID removes a book. Deleting a missing ID is not an error.
func (r *Repository) DeleteByID(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}

// DeleteAll removes every book and returns how many were deleted.
func (r *Repository) DeleteAll() (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("1 = 1").Delete(&entities.Book{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}

// Count returns the number of stored books.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
