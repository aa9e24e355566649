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

// --- Budget Command ---

type budgetCmd struct {
	category int64
	limit    float64
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "set a monthly budget for a category" }
func (*budgetCmd) Usage() string {
	return `budget -c <category_id> -limit <amount>

  Sets the monthly budget of a category. Setting it again replaces the
  previous limit; a category has at most one budget.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.category, "c", 0, "Category id")
	f.Float64Var(&c.limit, "limit", 0, "Monthly limit in ARS")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == 0 || c.limit <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	b, err := book.UpsertBudget(midinero.Budget{
		CategoryID: midinero.ID(c.category),
		Limit:      decimal.NewFromFloat(c.limit),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting budget: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Set budget for category %d to %s\n", b.CategoryID, b.Limit)
	return subcommands.ExitSuccess
}
