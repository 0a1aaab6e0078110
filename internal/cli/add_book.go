package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
)

type AddBookCommand struct {
	Caption      string
	Comment      string
	Rated        bool
	DatabasePath string

	Out io.Writer
}

func NewAddBookCommand() *AddBookCommand {
	return &AddBookCommand{}
}

func (cmd *AddBookCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)

	fs.StringVar(&cmd.Caption, "caption", "", "Book caption (required)")
	fs.StringVar(&cmd.Comment, "comment", "", "Optional comment")
	fs.BoolVar(&cmd.Rated, "rated", false, "Mark the book as rated")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Store a new book.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s add -caption \"Spring Boot Tut#1\" -comment \"Desc#1\" -rated\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.Caption) == "" {
		fs.Usage()
		return fmt.Errorf("caption is required")
	}

	return nil
}

func (cmd *AddBookCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	saved, err := db.Books().Save(entities.NewBook(cmd.Caption, cmd.Comment, cmd.Rated))
	if err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}

	out := outputOrStdout(cmd.Out)
	fmt.Fprintf(out, "Saved book %d\n", saved.ID)
	printBook(out, *saved)
	return nil
}
