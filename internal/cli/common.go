package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

func openDatabase(path string) (*database.Database, error) {
	db, err := database.NewDatabase(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func outputOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func printBook(w io.Writer, book entities.Book) {
	rated := " "
	if book.Rated {
		rated = "*"
	}
	if book.Comment == "" {
		fmt.Fprintf(w, "%4d [%s] %s\n", book.ID, rated, book.Caption)
		return
	}
	fmt.Fprintf(w, "%4d [%s] %s - %s\n", book.ID, rated, book.Caption, book.Comment)
}
