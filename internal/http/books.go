package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookStore is the data access contract behind the books API.
type BookStore interface {
	FindAll() ([]entities.Book, error)
	Save(book entities.Book) (*entities.Book, error)
	FindByID(id uint) (entities.Book, bool, error)
	FindByRated(rated bool) ([]entities.Book, error)
	FindByCaptionContaining(substr string) ([]entities.Book, error)
	DeleteByID(id uint) error
	DeleteAll() (int64, error)
}

// BookAuditor records book mutations. Implementations must not block.
type BookAuditor interface {
	LogBookCreate(book entities.Book, err error)
	LogBookUpdate(book entities.Book, err error)
	LogBookDelete(bookID uint, found bool, err error)
	LogPurge(deleted int64, err error)
}

// BookRequest is the body accepted by create and update.
type BookRequest struct {
	Caption string `json:"caption" binding:"required"`
	Comment string `json:"comment"`
	Rated   bool   `json:"rated"`
}

type BooksController struct {
	store   BookStore
	auditor BookAuditor
}

// NewBooksController creates a books controller. auditor may be nil.
func NewBooksController(store BookStore, auditor BookAuditor) *BooksController {
	return &BooksController{
		store:   store,
		auditor: auditor,
	}
}

// ListBooks handles GET /api/books with optional ?rated= or ?caption= filters.
func (controller *BooksController) ListBooks(c *gin.Context) {
	ratedParam, hasRated := c.GetQuery("rated")
	captionParam, hasCaption := c.GetQuery("caption")

	if hasRated && hasCaption {
		respondBadRequest(c, "rated and caption filters cannot be combined")
		return
	}

	var (
		result []entities.Book
		err    error
	)
	switch {
	case hasRated:
		rated, parseErr := strconv.ParseBool(ratedParam)
		if parseErr != nil {
			respondBadRequest(c, "invalid rated")
			return
		}
		result, err = controller.store.FindByRated(rated)
	case hasCaption:
		result, err = controller.store.FindByCaptionContaining(captionParam)
	default:
		result, err = controller.store.FindAll()
	}

	if errors.Is(err, books.ErrInvalidArgument) {
		respondBadRequest(c, err.Error())
		return
	}
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	if result == nil {
		result = []entities.Book{}
	}

	c.IndentedJSON(http.StatusOK, gin.H{"books": result, "count": len(result)})
}

// GetBook handles GET /api/books/:id.
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, found, err := controller.store.FindByID(id)
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	if !found {
		respondNotFound(c, "book")
		return
	}

	c.IndentedJSON(http.StatusOK, book)
}

// CreateBook handles POST /api/books.
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	book := entities.NewBook(req.Caption, req.Comment, req.Rated)
	saved, err := controller.store.Save(book)
	if saved != nil {
		book = *saved
	}
	controller.audit(func(a BookAuditor) { a.LogBookCreate(book, err) })
	if err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, saved)
}

// UpdateBook handles PUT /api/books/:id. The body replaces all fields.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	book := entities.NewBook(req.Caption, req.Comment, req.Rated)
	book.ID = id

	saved, err := controller.store.Save(book)
	if errors.Is(err, books.ErrNotFound) {
		respondNotFound(c, "book")
		return
	}
	controller.audit(func(a BookAuditor) { a.LogBookUpdate(book, err) })
	if err != nil {
		respondInternalError(c, err, "update book")
		return
	}

	c.IndentedJSON(http.StatusOK, saved)
}

// DeleteBook handles DELETE /api/books/:id. Missing books are not an error.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	_, found, err := controller.store.FindByID(id)
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	err = controller.store.DeleteByID(id)
	controller.audit(func(a BookAuditor) { a.LogBookDelete(id, found, err) })
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": found, "id": id})
}

// DeleteAllBooks handles DELETE /api/books.
func (controller *BooksController) DeleteAllBooks(c *gin.Context) {
	deleted, err := controller.store.DeleteAll()
	controller.audit(func(a BookAuditor) { a.LogPurge(deleted, err) })
	if err != nil {
		respondInternalError(c, err, "delete all books")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (controller *BooksController) audit(fn func(BookAuditor)) {
	if controller.auditor != nil {
		fn(controller.auditor)
	}
}
