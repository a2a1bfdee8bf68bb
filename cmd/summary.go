package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/its-camilo/smartfi"
	"github.com/its-camilo/smartfi/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	currency string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the present valuation of the book" }
func (*summaryCmd) Usage() string {
	return `sfi summary [-cur COP|USD]

  Displays total assets, liabilities, net worth, liquidity and buying
  power, valued in the requested currency.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "cur", "COP", "Currency to value the book in.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur, err := smartfi.ParseCurrency(c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	v := b.Valuation(cur)
	printMarkdown(renderer.RenderSummary(renderer.NewSummary(smartfi.Today(), v)))
	return subcommands.ExitSuccess
}
