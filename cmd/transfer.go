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

// --- Transfer Command ---

type transferCmd struct {
	date     string
	amount   float64
	from     string
	to       string
	toAmount float64
	memo     string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between accounts and savings" }
func (*transferCmd) Usage() string {
	return `transfer -a <amount> -from <ref> -to <ref> [-d <date>] [-credit <amount>] [-m <memo>]

  Moves money between two accounts or savings destinations. A ref is
  an account id, or a destination id prefixed with "d", e.g. "d42".
  For a cross-currency transfer, -credit sets the amount received on
  the destination side in its own currency.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", midinero.Today().String(), "Transfer date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount debited, in the origin's currency")
	f.StringVar(&c.from, "from", "", "Origin account id, or d<id> for a destination")
	f.StringVar(&c.to, "to", "", "Target account id, or d<id> for a destination")
	f.Float64Var(&c.toAmount, "credit", 0, "Amount credited in the target's currency, for cross-currency transfers")
	f.StringVar(&c.memo, "m", "", "An optional note")
}

// parseRef parses an account id or a "d"-prefixed destination id.
func parseRef(s string) (midinero.Ref, error) {
	kind := midinero.KindAccount
	if len(s) > 1 && (s[0] == 'd' || s[0] == 'D') {
		kind, s = midinero.KindDestination, s[1:]
	}
	var id int64
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil || id <= 0 {
		return midinero.Ref{}, fmt.Errorf("invalid reference %q, want an id or d<id>", s)
	}
	return midinero.Ref{Kind: kind, ID: midinero.ID(id)}, nil
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 || c.from == "" || c.to == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := midinero.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	from, err := parseRef(c.from)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	to, err := parseRef(c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	t, err := book.AddTransfer(midinero.Transfer{
		Date:        day,
		Amount:      decimal.NewFromFloat(c.amount),
		From:        from,
		To:          to,
		ToAmount:    decimal.NewFromFloat(c.toAmount),
		Description: c.memo,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transfer: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded transfer %d on %s\n", t.ID, t.Date)
	return subcommands.ExitSuccess
}

// --- Transfers Command ---

type transfersCmd struct{}

func (*transfersCmd) Name() string     { return "transfers" }
func (*transfersCmd) Synopsis() string { return "list transfers" }
func (*transfersCmd) Usage() string {
	return `transfers

  Lists all transfers.
`
}

func (c *transfersCmd) SetFlags(f *flag.FlagSet) {}

func (c *transfersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.Transfers(book.Records()))
	return subcommands.ExitSuccess
}
