package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/nvega/midinero"
)

// --- Destination Command ---

type destinationCmd struct {
	name     string
	icon     string
	target   float64
	currency string
	excluded bool
	memo     string
}

func (*destinationCmd) Name() string     { return "destination" }
func (*destinationCmd) Synopsis() string { return "create a savings destination" }
func (*destinationCmd) Usage() string {
	return `destination -name <name> [-icon <icon>] [-target <amount>] [-cur <ARS|USD>] [-excluded] [-m <memo>]

  Creates a savings destination, a virtual bucket fed by earmarked
  incomes and transfers. An excluded destination does not count
  towards the available total, which is the usual setup for savings.
`
}

func (c *destinationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Destination name")
	f.StringVar(&c.icon, "icon", "", "Display icon")
	f.Float64Var(&c.target, "target", 0, "Savings target amount")
	f.StringVar(&c.currency, "cur", midinero.ARS, "Destination currency (ARS, USD)")
	f.BoolVar(&c.excluded, "excluded", true, "Exclude from the available balance")
	f.StringVar(&c.memo, "m", "", "An optional note")
}

func (c *destinationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	d, err := book.AddDestination(midinero.Destination{
		Name:        c.name,
		Icon:        c.icon,
		Target:      decimal.NewFromFloat(c.target),
		Currency:    c.currency,
		Excluded:    c.excluded,
		Description: c.memo,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating destination: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created destination %d %q\n", d.ID, d.Name)
	return subcommands.ExitSuccess
}
