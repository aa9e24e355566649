package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/nvega/midinero"
	"github.com/nvega/midinero/renderer"
)

// --- Category Command ---

type categoryCmd struct{}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "create a spending category" }
func (*categoryCmd) Usage() string {
	return `category <name>

  Creates a spending category.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	cat, err := book.AddCategory(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating category: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created category %d %q\n", cat.ID, cat.Name)
	return subcommands.ExitSuccess
}

// --- Categories Command ---

type categoriesCmd struct {
	month string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list categories with the month's spend" }
func (*categoriesCmd) Usage() string {
	return `categories [-p <month>]

  Lists categories with the spend of the given month (defaults to the
  current one).
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "p", midinero.Today().MonthKey(), "Month (YYYY-MM)")
}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := midinero.ParseMonth(c.month); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.Categories(book.Records(), c.month))
	return subcommands.ExitSuccess
}
