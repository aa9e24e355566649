package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/nvega/midinero"
	"github.com/nvega/midinero/renderer"
)

// --- Goal Command ---

type goalCmd struct {
	amount float64
	date   string
	memo   string
	rank   int
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "set a savings goal" }
func (*goalCmd) Usage() string {
	return `goal -a <amount> [-d <target_date>] [-rank <n>] [-m <memo>]

  Sets a savings goal. The goal with the lowest rank is the primary
  one shown on the summary.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Goal amount in ARS")
	f.StringVar(&c.date, "d", "", "Target date (YYYY-MM-DD)")
	f.IntVar(&c.rank, "rank", 0, "Rank among goals, lowest is primary")
	f.StringVar(&c.memo, "m", "", "Goal description")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	var day midinero.Date
	if c.date != "" {
		var err error
		if day, err = midinero.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	g, err := book.AddGoal(midinero.Goal{
		Amount:      decimal.NewFromFloat(c.amount),
		TargetDate:  day,
		Description: c.memo,
		Rank:        c.rank,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting goal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Set goal %d\n", g.ID)
	return subcommands.ExitSuccess
}

// --- Goals Command ---

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list savings goals" }
func (*goalsCmd) Usage() string {
	return `goals

  Lists savings goals.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.Goals(book.Records()))
	return subcommands.ExitSuccess
}
