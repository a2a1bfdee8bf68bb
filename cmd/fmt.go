package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validate and rewrite the data files in canonical form"
}
func (*fmtCmd) Usage() string {
	return `sfi fmt

  Reads the book and the ledger, validates everything, and writes both
  files back in their canonical form: the ledger sorted chronologically
  with a stable key order, the book pretty-printed. Two runs produce
  byte-identical files, which keeps diffs minimal.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load the data files: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing book: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeLedger(b.Ledger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %q and %q.\n", *bookFile, *ledgerFile)
	return subcommands.ExitSuccess
}
