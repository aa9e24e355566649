package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// --- Theme Command ---

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or set the rendering theme" }
func (*themeCmd) Usage() string {
	return `theme [dark|light]

  Shows the markdown rendering theme, or sets it.
`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closer, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	switch f.NArg() {
	case 0:
		fmt.Println(book.Theme())
	case 1:
		name := f.Arg(0)
		if name != "dark" && name != "light" {
			fmt.Fprintf(os.Stderr, "Unknown theme %q, want dark or light\n", name)
			return subcommands.ExitUsageError
		}
		if err := book.SetTheme(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting theme: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Theme set to %s\n", name)
	default:
		f.Usage()
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
