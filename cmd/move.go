package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// moveCmd holds the flags for the 'move' subcommand.
type moveCmd struct {
	a, b   string
	groups bool
}

func (*moveCmd) Name() string     { return "move" }
func (*moveCmd) Synopsis() string { return "swap the display order of two accounts or groups" }
func (*moveCmd) Usage() string {
	return `sfi move -a <name> -b <name> [-groups]

  Swaps the manual positions of two sibling accounts (same group, or
  both ungrouped). With -groups the two names are groups instead.
`
}

func (c *moveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.a, "a", "", "First account (or group), by name or id.")
	f.StringVar(&c.b, "b", "", "Second account (or group), by name or id.")
	f.BoolVar(&c.groups, "groups", false, "Swap two groups instead of two accounts.")
}

func (c *moveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.groups {
		ga, err := resolveGroup(book, c.a)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		gb, err := resolveGroup(book, c.b)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := book.SwapGroupOrder(ga.ID, gb.ID); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	} else {
		aa, err := resolveAccount(book, c.a)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		ab, err := resolveAccount(book, c.b)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := book.SwapOrder(aa.ID, ab.ID); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Swapped %q and %q\n", c.a, c.b)
	return subcommands.ExitSuccess
}
