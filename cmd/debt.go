package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/nvega/midinero"
	"github.com/nvega/midinero/renderer"
)

// --- Debt Command ---

type debtCmd struct {
	name     string
	kind     string
	total    float64
	currency string
	date     string
	due      string
	memo     string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "record a debt" }
func (*debtCmd) Usage() string {
	return `debt -name <name> -total <amount> [-type <card|loan|personal|other>] [-cur <ARS|USD>] [-d <date>] [-due <date>] [-m <memo>]

  Records a debt. Its outstanding balance is the total minus the
  payments recorded with the pay command.
`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Debt name")
	f.StringVar(&c.kind, "type", string(midinero.OtherDebt), "Debt type (card, loan, personal, other)")
	f.Float64Var(&c.total, "total", 0, "Total amount owed")
	f.StringVar(&c.currency, "cur", midinero.ARS, "Debt currency (ARS, USD)")
	f.StringVar(&c.date, "d", midinero.Today().String(), "Date the debt was taken (YYYY-MM-DD)")
	f.StringVar(&c.due, "due", "", "Due date (YYYY-MM-DD)")
	f.StringVar(&c.memo, "m", "", "An optional note")
}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.total <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := midinero.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	var due midinero.Date
	if c.due != "" {
		if due, err = midinero.ParseDate(c.due); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	d, err := book.AddDebt(midinero.Debt{
		Name:        c.name,
		Type:        midinero.DebtType(c.kind),
		Total:       decimal.NewFromFloat(c.total),
		Currency:    c.currency,
		Date:        day,
		DueDate:     due,
		Description: c.memo,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording debt: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded debt %d %q\n", d.ID, d.Name)
	return subcommands.ExitSuccess
}

// --- Debts Command ---

type debtsCmd struct{}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "show a debt and its payment history" }
func (*debtsCmd) Usage() string {
	return `debts <debt_id>

  Shows one debt: total, paid to date, outstanding balance and the
  payment history.
`
}

func (c *debtsCmd) SetFlags(f *flag.FlagSet) {}

func (c *debtsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing debt id: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.DebtDetail(book.Records(), midinero.ID(id)))
	return subcommands.ExitSuccess
}

// --- Pay Command ---

type payCmd struct {
	debt    int64
	amount  float64
	date    string
	account int64
	memo    string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment against a debt" }
func (*payCmd) Usage() string {
	return `pay -debt <debt_id> -a <amount> [-d <date>] [-acc <account_id>] [-m <memo>]

  Records a payment against a debt. With -acc the payment also debits
  the account through a mirrored expense.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.debt, "debt", 0, "Debt id")
	f.Float64Var(&c.amount, "a", 0, "Payment amount in the debt's currency")
	f.StringVar(&c.date, "d", midinero.Today().String(), "Payment date (YYYY-MM-DD)")
	f.Int64Var(&c.account, "acc", 0, "Paying account id, to debit the account as well")
	f.StringVar(&c.memo, "m", "", "An optional note")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.debt == 0 || c.amount <= 0 {
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

	p, err := book.AddPayment(midinero.DebtPayment{
		DebtID:      midinero.ID(c.debt),
		Amount:      decimal.NewFromFloat(c.amount),
		Date:        day,
		AccountID:   midinero.ID(c.account),
		Description: c.memo,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording payment: %v\n", err)
		return subcommands.ExitFailure
	}

	outstanding := book.Records().DebtBalance(p.DebtID)
	fmt.Printf("Recorded payment %d, outstanding balance %s\n", p.ID, outstanding)
	return subcommands.ExitSuccess
}
