package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/its-camilo/smartfi"
	"github.com/its-camilo/smartfi/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	from     string
	currency string
	asJSON   bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "reconstruct the day-by-day net worth series" }
func (*historyCmd) Usage() string {
	return `sfi history [-from <date>] [-cur COP|USD] [-json]

  Replays the ledger backward from today to rebuild what the net worth,
  liquidity and buying power were on every day. No snapshots are
  stored: the series always reflects the current data.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First day of the series. Defaults to the project start.")
	f.StringVar(&c.currency, "cur", "COP", "Currency to value the series in.")
	f.BoolVar(&c.asJSON, "json", false, "Emit the raw series as JSON, for charts.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur, err := smartfi.ParseCurrency(c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var from smartfi.Date
	if c.from != "" {
		from, err = smartfi.ParseDate(c.from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	points := b.History(from, cur)

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(points); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderHistory(renderer.NewHistory(points, cur)))
	return subcommands.ExitSuccess
}
