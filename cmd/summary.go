package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/nvega/midinero"
	"github.com/nvega/midinero/renderer"
)

// --- Summary Command ---

type summaryCmd struct {
	date    string
	refresh bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the balances dashboard" }
func (*summaryCmd) Usage() string {
	return `summary [-d <date>] [-refresh]

  Displays the dashboard: available and total balances, accounts,
  savings, the primary goal and outstanding debts.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", midinero.Today().String(), "Date for the summary (YYYY-MM-DD)")
	f.BoolVar(&c.refresh, "refresh", false, "Force a refresh of the exchange rate")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// The fetched rate refreshes when it went stale, unless the user
	// pinned a manual rate. Failures keep the last known value.
	rate := book.Rate()
	if c.refresh || (!rate.UseManual && rate.Stale(time.Now())) {
		if _, err := book.RefreshRate(nil); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot refresh exchange rate: %v\n", err)
		}
	}

	printMarkdown(renderer.Summary(book.Records(), on))
	return subcommands.ExitSuccess
}
