package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/its-camilo/smartfi"
	"github.com/shopspring/decimal"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	set   float64
	fetch bool
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show, set or fetch the USD/COP exchange rate" }
func (*rateCmd) Usage() string {
	return `sfi rate [-set <pesos per dollar> | -fetch]

  Without flags, shows the configured rate. -set stores a rate by hand,
  -fetch asks the exchange rate service for today's rate. The rate is
  recorded on every future transaction.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.set, "set", 0, "Store this rate, in pesos per dollar.")
	f.BoolVar(&c.fetch, "fetch", false, "Fetch today's rate from the exchange rate service.")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.set != 0:
		if c.set < 0 {
			fmt.Fprintln(os.Stderr, "the rate must be positive")
			return subcommands.ExitUsageError
		}
		b.Settings.USDCOP = decimal.NewFromFloat(c.set)
	case c.fetch:
		rates, err := smartfi.FetchUSDCOP()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching rate: %v\n", err)
			return subcommands.ExitFailure
		}
		b.Settings.USDCOP = rates.USDCOP
	default:
		if b.Settings.USDCOP.IsZero() {
			fmt.Println("no rate configured, use -set or -fetch")
		} else {
			fmt.Printf("1 USD = %s COP\n", b.Settings.USDCOP)
		}
		return subcommands.ExitSuccess
	}

	if err := EncodeBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("1 USD = %s COP\n", b.Settings.USDCOP)
	return subcommands.ExitSuccess
}
