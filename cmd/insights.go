package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/balancete/renderer"
	"github.com/google/subcommands"
)

// insightsCmd is the subcommand for the financial analysis.
type insightsCmd struct{}

func (*insightsCmd) Name() string { return "insights" }

func (*insightsCmd) Synopsis() string { return "ask the AI controller for an analysis of the dashboard" }

func (*insightsCmd) Usage() string {
	return `balancete insights

  Send the totals and indicators of the stored dashboard to the configured
  text-generation service and print its analysis.
`
}

func (*insightsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *insightsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return exitOnError("Error", err)
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(ctx, a.insightTimeout())
	defer cancel()

	text, err := a.dash.RequestInsights(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.InsightMarkdown(text))
	return subcommands.ExitSuccess
}
