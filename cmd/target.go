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

// --- Target Command ---

type targetCmd struct {
	category int64
	percent  float64
	from     string
}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "set a spending reduction target for a category" }
func (*targetCmd) Usage() string {
	return `target -c <category_id> -percent <n> [-from <month>]

  Sets a reduction target: cut the category's monthly spend by the
  given percentage, relative to the nearest earlier month with data.
  A category has at most one target.
`
}

func (c *targetCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.category, "c", 0, "Category id")
	f.Float64Var(&c.percent, "percent", 0, "Reduction percentage, in [0,100]")
	f.StringVar(&c.from, "from", midinero.Today().MonthKey(), "First month the target applies to (YYYY-MM)")
}

func (c *targetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == 0 || c.percent <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if _, err := midinero.ParseMonth(c.from); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	t, err := book.UpsertTarget(midinero.ReductionTarget{
		CategoryID: midinero.ID(c.category),
		Percent:    decimal.NewFromFloat(c.percent),
		StartMonth: c.from,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting target: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Set reduction target for category %d: -%s%% from %s\n", t.CategoryID, t.Percent, t.StartMonth)
	return subcommands.ExitSuccess
}
