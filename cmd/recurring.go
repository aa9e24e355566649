package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/nvega/midinero"
	"github.com/nvega/midinero/renderer"
)

// --- Recurring Command ---

type recurringCmd struct {
	date string
	log  int64
}

func (*recurringCmd) Name() string     { return "recurring" }
func (*recurringCmd) Synopsis() string { return "list recurring expenses due soon, or log one" }
func (*recurringCmd) Usage() string {
	return `recurring [-d <date>] [-log <expense_id>]

  Lists the recurring expenses whose next occurrence is due soon. With
  -log, records the next occurrence of one of them on the given date.
`
}

func (c *recurringCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", midinero.Today().String(), "Reference date (YYYY-MM-DD)")
	f.Int64Var(&c.log, "log", 0, "Record the next occurrence of this recurring expense")
}

func (c *recurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := midinero.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	if c.log != 0 {
		e, err := book.MaterializeRecurring(midinero.ID(c.log), on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error logging recurring expense: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded expense %d on %s\n", e.ID, e.Date)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Recurring(book.Records(), on))
	return subcommands.ExitSuccess
}
