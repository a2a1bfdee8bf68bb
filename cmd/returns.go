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

// returnsCmd holds the flags for the 'returns' subcommand.
type returnsCmd struct {
	window   string
	group    string
	tag      string
	currency string
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "display performance over a window, with projections" }
func (*returnsCmd) Usage() string {
	return `sfi returns [-w 1m|3m|6m|12m|all] [-g <group>] [-tag <tag>] [-cur COP|USD]

  Computes the return of the in-scope accounts over the window ending
  today, the equivalent annual rate, and the projected valuations at 3,
  6 and 12 months.
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "1m", "Measurement window: 1m, 3m, 6m, 12m or all.")
	f.StringVar(&c.group, "g", "", "Restrict the report to one group.")
	f.StringVar(&c.tag, "tag", "", "Restrict the report to accounts with this tag.")
	f.StringVar(&c.currency, "cur", "COP", "Currency to value the report in.")
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := smartfi.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
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

	scope := smartfi.Scope{Tag: c.tag}
	if c.group != "" {
		g, err := resolveGroup(b, c.group)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		scope.GroupID = g.ID
	}

	report := b.Performance(scope, window, cur)
	printMarkdown(renderer.RenderReturns(renderer.NewReturns(report)))
	return subcommands.ExitSuccess
}
