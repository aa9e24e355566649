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

// --- Income Command ---

type incomeCmd struct {
	date        string
	amount      float64
	account     int64
	destination int64
	memo        string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income on an account" }
func (*incomeCmd) Usage() string {
	return `income -a <amount> -acc <account_id> [-d <date>] [-dest <destination_id>] [-m <memo>]

  Records an income. The amount is credited to the account; with -dest
  it is also earmarked for a savings destination.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", midinero.Today().String(), "Income date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount in the account's currency")
	f.Int64Var(&c.account, "acc", 0, "Credited account id")
	f.Int64Var(&c.destination, "dest", 0, "Savings destination id the income is earmarked for")
	f.StringVar(&c.memo, "m", "", "An optional note")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 || c.account == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := midinero.ParseDate(c.date)
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

	in, err := book.AddIncome(midinero.Income{
		Date:          day,
		Amount:        decimal.NewFromFloat(c.amount),
		AccountID:     midinero.ID(c.account),
		DestinationID: midinero.ID(c.destination),
		Description:   c.memo,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording income: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded income %d on %s\n", in.ID, in.Date)
	return subcommands.ExitSuccess
}

// --- Incomes Command ---

type incomesCmd struct {
	month string
}

func (*incomesCmd) Name() string     { return "incomes" }
func (*incomesCmd) Synopsis() string { return "list incomes" }
func (*incomesCmd) Usage() string {
	return `incomes [-p <month>]

  Lists incomes, optionally restricted to a month (YYYY-MM).
`
}

func (c *incomesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "p", "", "Month to list (YYYY-MM), all by default")
}

func (c *incomesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month != "" {
		if _, err := midinero.ParseMonth(c.month); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.Incomes(book.Records(), c.month))
	return subcommands.ExitSuccess
}
