package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/nvega/midinero"
	"github.com/nvega/midinero/renderer"
)

// --- Expense Command ---

type expenseCmd struct {
	date        string
	amount      float64
	category    int64
	account     int64
	destination int64
	memo        string
	tags        string
	recurring   string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `expense -a <amount> -c <category_id> [-acc <account_id> | -dest <destination_id>] [-d <date>] [-m <memo>] [-tags <t1,t2>] [-recurring <frequency>]

  Records an expense against a category, debited from an account or a
  savings destination. A recurring expense is resurfaced one frequency
  period later (weekly, monthly or yearly).
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", midinero.Today().String(), "Expense date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount in the source's currency")
	f.Int64Var(&c.category, "c", 0, "Category id")
	f.Int64Var(&c.account, "acc", 0, "Debited account id")
	f.Int64Var(&c.destination, "dest", 0, "Debited savings destination id, instead of an account")
	f.StringVar(&c.memo, "m", "", "An optional note")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags")
	f.StringVar(&c.recurring, "recurring", "", "Recurrence frequency (weekly, monthly, yearly)")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 || c.category == 0 || (c.account == 0 && c.destination == 0) {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if c.account != 0 && c.destination != 0 {
		fmt.Fprintln(os.Stderr, "Error: -acc and -dest flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	day, err := midinero.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	source := midinero.AccountRef(midinero.ID(c.account))
	if c.destination != 0 {
		source = midinero.DestinationRef(midinero.ID(c.destination))
	}

	expense := midinero.Expense{
		Date:        day,
		Amount:      decimal.NewFromFloat(c.amount),
		CategoryID:  midinero.ID(c.category),
		Source:      source,
		Description: c.memo,
		Tags:        splitTags(c.tags),
	}
	if c.recurring != "" {
		freq, err := midinero.ParseFrequency(c.recurring)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		expense.Recurring = true
		expense.Frequency = freq
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	e, err := book.AddExpense(expense)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording expense: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded expense %d on %s\n", e.ID, e.Date)
	return subcommands.ExitSuccess
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// --- Expenses Command ---

type expensesCmd struct {
	month string
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list expenses" }
func (*expensesCmd) Usage() string {
	return `expenses [-p <month>]

  Lists expenses, optionally restricted to a month (YYYY-MM).
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "p", "", "Month to list (YYYY-MM), all by default")
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Expenses(book.Records(), c.month))
	return subcommands.ExitSuccess
}
