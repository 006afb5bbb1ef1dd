package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/balancete"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a balance sheet spreadsheet" }
func (*importCmd) Usage() string {
	return `balancete import <file>

  Import a spreadsheet (xlsx, xls, csv, tsv) and replace the stored dashboard.
  The first row is a header. Columns A to C hold the assets (description,
  current period, prior period) and columns E to G the liabilities.
`
}

func (*importCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import requires exactly one file")
		return subcommands.ExitUsageError
	}
	filename := f.Arg(0)

	a, err := openApp(ctx)
	if err != nil {
		return exitOnError("Error", err)
	}
	defer a.Close()

	file, err := os.Open(filename)
	if err != nil {
		return exitOnError("Error opening sheet", err)
	}
	defer file.Close()

	if err := a.dash.Upload(ctx, filepath.Base(filename), file); err != nil {
		if !errors.Is(err, balancete.ErrNotPersisted) {
			return exitOnError("Error importing sheet", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	data := a.dash.Data()
	s := a.dash.Summary()
	fmt.Printf("Imported %d assets and %d liabilities from %s\n", len(data.Assets), len(data.Liabilities), filename)
	fmt.Printf("Ativo Total:   %s\n", balancete.BRL(s.Assets.Current))
	fmt.Printf("Passivo Total: %s\n", balancete.BRL(s.Liabilities.Current))
	for _, w := range s.Warnings() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	return subcommands.ExitSuccess
}
