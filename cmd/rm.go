package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/nvega/midinero"
)

// --- Rm Command ---

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a record" }
func (*rmCmd) Usage() string {
	return `rm <kind> <id>

  Deletes a record. Kind is one of: income, expense, transfer,
  account, destination, category, goal, budget, target, debt,
  payment. Budgets and targets are identified by their category id.
  Deleting a debt also deletes its payments; expenses created by
  those payments stay in the ledger.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	kind := f.Arg(0)
	n, err := strconv.ParseInt(f.Arg(1), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing id: %v\n", err)
		return subcommands.ExitUsageError
	}
	id := midinero.ID(n)

	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	switch kind {
	case "income":
		err = book.DeleteIncome(id)
	case "expense":
		err = book.DeleteExpense(id)
	case "transfer":
		err = book.DeleteTransfer(id)
	case "account":
		err = book.DeleteAccount(id)
	case "destination":
		err = book.DeleteDestination(id)
	case "category":
		err = book.DeleteCategory(id)
	case "goal":
		err = book.DeleteGoal(id)
	case "budget":
		err = book.DeleteBudget(id)
	case "target":
		err = book.DeleteTarget(id)
	case "debt":
		err = book.DeleteDebt(id)
	case "payment":
		err = book.DeletePayment(id)
	default:
		fmt.Fprintf(os.Stderr, "Unknown kind %q\n", kind)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting %s %d: %v\n", kind, id, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %s %d\n", kind, id)
	return subcommands.ExitSuccess
}
