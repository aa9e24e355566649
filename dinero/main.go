// Command dinero is the personal money tracker CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/nvega/midinero/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately
// when none is in progress.
func completion() {
	sub := func() *complete.Command { return &complete.Command{} }
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"income": sub(), "incomes": sub(),
			"expense": sub(), "expenses": sub(),
			"transfer": sub(), "transfers": sub(),
			"account": sub(), "destination": sub(),
			"category": sub(), "categories": sub(),
			"goal": sub(), "goals": sub(),
			"budget": sub(), "target": sub(),
			"debt": sub(), "debts": sub(), "pay": sub(),
			"summary": sub(), "report": sub(), "recurring": sub(),
			"rate": sub(), "export": sub(), "import": sub(),
			"rm": sub(), "topic": sub(), "theme": sub(),
		},
		Flags: map[string]complete.Predictor{
			"data-path": predict.Dirs("*"),
			"db":        predict.Files("*.db"),
		},
	}
	root.Complete(path.Base(os.Args[0]))
}
