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

// --- Report Command ---

type reportCmd struct {
	month string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the monthly report" }
func (*reportCmd) Usage() string {
	return `report [-p <month>]

  Displays the monthly report: totals, the category breakdown with
  budgets, reduction targets, tags and the recent history.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "p", midinero.Today().MonthKey(), "Month to report on (YYYY-MM)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := midinero.ParseMonth(c.month); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.Report(book.Records(), c.month))
	return subcommands.ExitSuccess
}
