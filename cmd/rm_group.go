package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rmGroupCmd holds the flags for the 'rm-group' subcommand.
type rmGroupCmd struct {
	group string
}

func (*rmGroupCmd) Name() string     { return "rm-group" }
func (*rmGroupCmd) Synopsis() string { return "delete a group, keeping its accounts" }
func (*rmGroupCmd) Usage() string {
	return `sfi rm-group -g <group>

  Deletes a group. Its member accounts survive, ungrouped, with their
  balances and transactions untouched.
`
}

func (c *rmGroupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "g", "", "Group to delete, by name or id.")
}

func (c *rmGroupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	group, err := resolveGroup(b, c.group)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := b.DeleteGroup(group.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted group %q, its accounts are now ungrouped\n", group.Name)
	return subcommands.ExitSuccess
}
