package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "remove the stored dashboard" }
func (*resetCmd) Usage() string {
	return `balancete reset

  Remove the stored dashboard. Resetting an empty store is not an error.
`
}

func (*resetCmd) SetFlags(_ *flag.FlagSet) {}

func (c *resetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return exitOnError("Error", err)
	}
	defer a.Close()

	if err := a.dash.Reset(); err != nil {
		return exitOnError("Error resetting dashboard", err)
	}
	fmt.Println("Dashboard reset.")
	return subcommands.ExitSuccess
}
