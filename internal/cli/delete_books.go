package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshelf/internal/config"
)

type DeleteBooksCommand struct {
	ID           uint
	All          bool
	DatabasePath string

	Out io.Writer
}

func NewDeleteBooksCommand() *DeleteBooksCommand {
	return &DeleteBooksCommand{}
}

func (cmd *DeleteBooksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)

	fs.UintVar(&cmd.ID, "id", 0, "ID of the book to delete")
	fs.BoolVar(&cmd.All, "all", false, "Delete every book")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s delete (-id N | -all) [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete a single book or all books.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if (cmd.ID == 0) == !cmd.All {
		fs.Usage()
		return fmt.Errorf("exactly one of -id or -all is required")
	}

	return nil
}

func (cmd *DeleteBooksCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := db.Books()
	out := outputOrStdout(cmd.Out)

	if cmd.All {
		deleted, err := repo.DeleteAll()
		if err != nil {
			return fmt.Errorf("failed to delete books: %w", err)
		}
		fmt.Fprintf(out, "Deleted %d book(s)\n", deleted)
		return nil
	}

	_, found, err := repo.FindByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to look up book %d: %w", cmd.ID, err)
	}
	if err := repo.DeleteByID(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete book %d: %w", cmd.ID, err)
	}
	if !found {
		fmt.Fprintf(out, "Book %d not found, nothing deleted\n", cmd.ID)
		return nil
	}
	fmt.Fprintf(out, "Deleted book %d\n", cmd.ID)
	return nil
}
