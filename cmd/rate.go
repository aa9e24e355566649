package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// --- Rate Command ---

type rateCmd struct {
	set   float64
	fetch bool
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show or set the ARS/USD exchange rate" }
func (*rateCmd) Usage() string {
	return `rate [-set <value> | -fetch]

  Shows the exchange-rate state. With -set, pins a manual rate; with
  -fetch, fetches the current official rate from the quote service and
  makes it authoritative.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.set, "set", 0, "Pin a manual ARS-per-USD rate")
	f.BoolVar(&c.fetch, "fetch", false, "Fetch the current rate from the quote service")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.set > 0 && c.fetch {
		fmt.Fprintln(os.Stderr, "Error: -set and -fetch flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	switch {
	case c.set > 0:
		state := book.Rate().WithManual(decimal.NewFromFloat(c.set))
		if err := book.SetRate(state); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting rate: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.fetch:
		if _, err := book.RefreshRate(nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching rate: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	state := book.Rate()
	fmt.Printf("Current rate: 1 USD = %s ARS\n", state.Current())
	fmt.Printf("  manual:  %s", state.Manual)
	if state.UseManual {
		fmt.Print(" (authoritative)")
	}
	fmt.Println()
	if !state.FetchedAt.IsZero() {
		fmt.Printf("  fetched: %s at %s", state.Fetched, state.FetchedAt.Format("2006-01-02 15:04"))
		if !state.UseManual {
			fmt.Print(" (authoritative)")
		}
		fmt.Println()
	}
	return subcommands.ExitSuccess
}
