package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
)

type ListBooksCommand struct {
	Rated        string
	Caption      string
	DatabasePath string

	Out io.Writer
}

func NewListBooksCommand() *ListBooksCommand {
	return &ListBooksCommand{}
}

func (cmd *ListBooksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)

	fs.StringVar(&cmd.Rated, "rated", "", "Only list books with this rated flag (true|false)")
	fs.StringVar(&cmd.Caption, "caption", "", "Only list books whose caption contains this text")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List stored books, optionally filtered.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s list\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s list -rated true\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s list -caption Spring\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Rated != "" && cmd.Caption != "" {
		fs.Usage()
		return fmt.Errorf("-rated and -caption cannot be combined")
	}
	if cmd.Rated != "" {
		if _, err := strconv.ParseBool(cmd.Rated); err != nil {
			return fmt.Errorf("invalid -rated value %q: expected true or false", cmd.Rated)
		}
	}

	return nil
}

func (cmd *ListBooksCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := db.Books()

	var books []entities.Book
	switch {
	case cmd.Rated != "":
		rated, _ := strconv.ParseBool(cmd.Rated)
		books, err = repo.FindByRated(rated)
	case cmd.Caption != "":
		books, err = repo.FindByCaptionContaining(cmd.Caption)
	default:
		books, err = repo.FindAll()
	}
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	out := outputOrStdout(cmd.Out)
	if len(books) == 0 {
		fmt.Fprintln(out, "No books found")
		return nil
	}
	for _, book := range books {
		printBook(out, book)
	}
	fmt.Fprintf(out, "\n%d book(s)\n", len(books))
	return nil
}
