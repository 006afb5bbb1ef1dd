package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/balancete/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	view string
	raw  bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show the stored dashboard" }
func (*showCmd) Usage() string {
	return `balancete show [-view all|assets|liabilities] [-raw]

  Show the stored dashboard: totals, line items with AH% and AV%, and indicators.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", string(renderer.ViewAll), "Sides to show: all, assets or liabilities")
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown instead of rendering it")
}

func (c *showCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return exitOnError("Error", err)
	}
	defer a.Close()

	md := renderer.DashboardMarkdown(a.dash.Data(), renderer.ParseView(c.view))
	if c.raw {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
