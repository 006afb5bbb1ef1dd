package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/balancete/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Load .env if present (ignore error if not found)
	_ = godotenv.Load()

	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	views := predict.Set{"all", "assets", "liabilities"}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"serve":    {Flags: map[string]complete.Predictor{"addr": predict.Something}},
			"import":   {Args: predict.Files("*")},
			"show":     {Flags: map[string]complete.Predictor{"view": views, "raw": predict.Nothing}},
			"insights": {},
			"reset":    {},
			"topic":    {Args: predict.Set{"readme", "sheet", "config", "insights", "*"}, Flags: map[string]complete.Predictor{"raw": predict.Nothing}},
		},
		Flags: map[string]complete.Predictor{
			"config":        predict.Files("*.yaml"),
			"store-backend": predict.Set{"dir", "sqlite", "memory"},
			"store-path":    predict.Files("*"),
		},
	}
}
