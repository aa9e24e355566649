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

// --- Account Command ---

type accountCmd struct {
	name     string
	kind     string
	currency string
	initial  float64
	excluded bool
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "create a money-holding account" }
func (*accountCmd) Usage() string {
	return `account -name <name> [-type <cash|bank|wallet>] [-cur <ARS|USD>] [-initial <amount>] [-excluded]

  Creates an account. The initial balance is the starting point of the
  derived balance; an excluded account does not count towards the
  available total.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name")
	f.StringVar(&c.kind, "type", string(midinero.Cash), "Account type (cash, bank, wallet)")
	f.StringVar(&c.currency, "cur", midinero.ARS, "Account currency (ARS, USD)")
	f.Float64Var(&c.initial, "initial", 0, "Initial balance")
	f.BoolVar(&c.excluded, "excluded", false, "Exclude from the available balance")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	a, err := book.AddAccount(midinero.Account{
		Name:           c.name,
		Type:           midinero.AccountType(c.kind),
		Currency:       c.currency,
		InitialBalance: decimal.NewFromFloat(c.initial),
		Excluded:       c.excluded,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created account %d %q\n", a.ID, a.Name)
	return subcommands.ExitSuccess
}
