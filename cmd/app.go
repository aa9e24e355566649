// Package cmd implements the CLI application to manage the money
// tracker.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/nvega/midinero"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&incomeCmd{}, "records")
	c.Register(&incomesCmd{}, "records")
	c.Register(&expenseCmd{}, "records")
	c.Register(&expensesCmd{}, "records")
	c.Register(&transferCmd{}, "records")
	c.Register(&transfersCmd{}, "records")
	c.Register(&rmCmd{}, "records")

	c.Register(&accountCmd{}, "setup")
	c.Register(&destinationCmd{}, "setup")
	c.Register(&categoryCmd{}, "setup")
	c.Register(&categoriesCmd{}, "setup")

	c.Register(&goalCmd{}, "planning")
	c.Register(&goalsCmd{}, "planning")
	c.Register(&budgetCmd{}, "planning")
	c.Register(&targetCmd{}, "planning")
	c.Register(&debtCmd{}, "planning")
	c.Register(&debtsCmd{}, "planning")
	c.Register(&payCmd{}, "planning")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&recurringCmd{}, "reports")

	c.Register(&rateCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&topicCmd{}, "data")
	c.Register(&themeCmd{}, "data")
}

// Environment variables honored as defaults for the global flags.
// An extension or a .env file can set them.
const (
	EnvDataPath = "MIDINERO_DATA_PATH"
	EnvDBFile   = "MIDINERO_DB_FILE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data-path", envOr(EnvDataPath, ".midinero"), "Path to the data folder (one JSON file per collection)")
var dbFile = flag.String("db", os.Getenv(EnvDBFile), "Path to a SQLite database file; overrides -data-path when set")

// theme is the markdown rendering style, read from the book on open.
var theme = "dark"

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func init() {
	// A .env file in the working directory supplies the environment
	// defaults, never overriding variables already set.
	_ = godotenv.Load()
}

// OpenBook opens the book on the configured store and seeds defaults
// on first use. The returned closer is a no-op for the folder store.
func OpenBook() (*midinero.Book, func() error, error) {
	var (
		store  midinero.Store
		closer = func() error { return nil }
	)
	if *dbFile != "" {
		s, err := midinero.OpenSQLiteStore(*dbFile)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open database %q: %w", *dbFile, err)
		}
		store, closer = s, s.Close
	} else {
		s, err := midinero.OpenDirStore(*dataPath)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open data folder %q: %w", *dataPath, err)
		}
		store = s
	}

	book := midinero.NewBook(store)
	if err := book.Init(); err != nil {
		closer()
		return nil, nil, err
	}
	theme = book.Theme()
	return book, closer, nil
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(content string) {
	out, err := glamour.Render(content, theme)
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}
