package books

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := filepath.Join(t.TempDir(), "books.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Book{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}

	return repo, db, cleanup
}

// persist stores a book directly through the handle, bypassing the repository.
func persist(t *testing.T, db *gorm.DB, caption, comment string, rated bool) entities.Book {
	t.Helper()
	book := entities.NewBook(caption, comment, rated)
	require.NoError(t, db.Create(&book).Error)
	require.NotZero(t, book.ID)
	return book
}

func assertSameBooks(t *testing.T, expected, actual []entities.Book) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for _, want := range expected {
		found := false
		for _, got := range actual {
			if want.SameAs(got) {
				found = true
				break
			}
		}
		assert.True(t, found, "book %d (%q) not found", want.ID, want.Caption)
	}
}

func TestRepository_FindAll_Empty(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	books, err := repo.FindAll()

	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestRepository_Save_Insert(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book, err := repo.Save(entities.NewBook("Tut caption", "Tut desc", true))

	require.NoError(t, err)
	assert.NotZero(t, book.ID)
	assert.Equal(t, "Tut caption", book.Caption)
	assert.Equal(t, "Tut desc", book.Comment)
	assert.True(t, book.Rated)
	assert.False(t, book.CreatedAt.IsZero())
}

func TestRepository_Save_AssignsDistinctIDs(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.Save(entities.NewBook("Tut#1", "Desc#1", true))
	require.NoError(t, err)
	second, err := repo.Save(entities.NewBook("Tut#1", "Desc#1", true))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRepository_FindAll(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	tut1 := persist(t, db, "Tut#1", "Desc#1", true)
	tut2 := persist(t, db, "Tut#2", "Desc#2", false)
	tut3 := persist(t, db, "Tut#3", "Desc#3", true)

	books, err := repo.FindAll()

	require.NoError(t, err)
	assertSameBooks(t, []entities.Book{tut1, tut2, tut3}, books)
}

func TestRepository_FindByID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	persist(t, db, "Tut#1", "Desc#1", true)
	tut2 := persist(t, db, "Tut#2", "Desc#2", false)

	found, ok, err := repo.FindByID(tut2.ID)

	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, tut2.SameAs(found))
}

func TestRepository_FindByID_Missing(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	tut1 := persist(t, db, "Tut#1", "Desc#1", true)

	found, ok, err := repo.FindByID(tut1.ID + 100)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, found.ID)
}

func TestRepository_FindByRated(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	tut1 := persist(t, db, "Tut#1", "Desc#1", true)
	tut2 := persist(t, db, "Tut#2", "Desc#2", false)
	tut3 := persist(t, db, "Tut#3", "Desc#3", true)

	t.Run("rated", func(t *testing.T) {
		books, err := repo.FindByRated(true)
		require.NoError(t, err)
		assertSameBooks(t, []entities.Book{tut1, tut3}, books)
	})

	t.Run("not rated", func(t *testing.T) {
		books, err := repo.FindByRated(false)
		require.NoError(t, err)
		assertSameBooks(t, []entities.Book{tut2}, books)
	})
}

func TestRepository_FindByCaptionContaining(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	tut1 := persist(t, db, "Spring Boot Tut#1", "Desc#1", true)
	persist(t, db, "Java Tut#2", "Desc#2", false)
	tut3 := persist(t, db, "Spring Data JPA Tut#3", "Desc#3", true)

	books, err := repo.FindByCaptionContaining("ring")

	require.NoError(t, err)
	assertSameBooks(t, []entities.Book{tut1, tut3}, books)
	// Storage order is preserved.
	assert.Equal(t, tut1.ID, books[0].ID)
	assert.Equal(t, tut3.ID, books[1].ID)
}

func TestRepository_FindByCaptionContaining_CaseSensitive(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	persist(t, db, "Spring Boot Tut#1", "Desc#1", true)

	books, err := repo.FindByCaptionContaining("spring")
	require.NoError(t, err)
	assert.Empty(t, books)

	books, err = repo.FindByCaptionContaining("Spring")
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestRepository_FindByCaptionContaining_LiteralMatch(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	persist(t, db, "100% Go", "", false)
	persist(t, db, "snake_case", "", false)
	persist(t, db, "Plain", "", false)

	books, err := repo.FindByCaptionContaining("%")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "100% Go", books[0].Caption)

	books, err = repo.FindByCaptionContaining("_")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "snake_case", books[0].Caption)
}

func TestRepository_FindByCaptionContaining_Empty(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.FindByCaptionContaining("")

	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRepository_Save_Update(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	persist(t, db, "Tut#1", "Desc#1", true)
	tut2 := persist(t, db, "Tut#2", "Desc#2", false)

	updated := entities.NewBook("updated Tut#2", "updated Desc#2", true)

	tut, ok, err := repo.FindByID(tut2.ID)
	require.NoError(t, err)
	require.True(t, ok)
	tut.Caption = updated.Caption
	tut.Comment = updated.Comment
	tut.Rated = updated.Rated
	_, err = repo.Save(tut)
	require.NoError(t, err)

	check, ok, err := repo.FindByID(tut2.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tut2.ID, check.ID)
	assert.Equal(t, updated.Caption, check.Caption)
	assert.Equal(t, updated.Comment, check.Comment)
	assert.Equal(t, updated.Rated, check.Rated)
	assert.WithinDuration(t, tut2.CreatedAt, check.CreatedAt, time.Second)
}

func TestRepository_Save_UpdateToZeroValues(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	tut := persist(t, db, "Tut#1", "Desc#1", true)
	tut.Comment = ""
	tut.Rated = false

	saved, err := repo.Save(tut)
	require.NoError(t, err)
	assert.Equal(t, tut.ID, saved.ID)

	check, ok, err := repo.FindByID(tut.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, check.Comment)
	assert.False(t, check.Rated)
}

func TestRepository_Save_UnknownID(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book := entities.NewBook("Ghost", "never stored", false)
	book.ID = 42

	saved, err := repo.Save(book)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, saved)

	// No upsert happened
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRepository_DeleteByID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	tut1 := persist(t, db, "Tut#1", "Desc#1", true)
	tut2 := persist(t, db, "Tut#2", "Desc#2", false)
	tut3 := persist(t, db, "Tut#3", "Desc#3", true)

	err := repo.DeleteByID(tut2.ID)
	require.NoError(t, err)

	books, err := repo.FindAll()
	require.NoError(t, err)
	assertSameBooks(t, []entities.Book{tut1, tut3}, books)

	_, ok, err := repo.FindByID(tut2.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_DeleteByID_Missing(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	tut1 := persist(t, db, "Tut#1", "Desc#1", true)

	err := repo.DeleteByID(tut1.ID + 100)
	require.NoError(t, err)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_DeleteAll(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	persist(t, db, "Tut#1", "Desc#1", true)
	persist(t, db, "Tut#2", "Desc#2", false)

	deleted, err := repo.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	books, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestRepository_DeleteAll_Empty(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	deleted, err := repo.DeleteAll()

	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestRepository_Count(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	persist(t, db, "Tut#1", "Desc#1", true)
	persist(t, db, "Tut#2", "Desc#2", false)

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
