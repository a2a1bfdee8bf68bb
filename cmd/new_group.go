package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// newGroupCmd holds the flags for the 'new-group' subcommand.
type newGroupCmd struct {
	name string
}

func (*newGroupCmd) Name() string     { return "new-group" }
func (*newGroupCmd) Synopsis() string { return "create a named group of accounts" }
func (*newGroupCmd) Usage() string {
	return `sfi new-group -name <name>

  Creates a group, placed last in the group ordering. Move accounts into
  it with edit-account -group.
`
}

func (c *newGroupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the new group.")
}

func (c *newGroupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "a group needs a -name")
		return subcommands.ExitUsageError
	}
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, ok := b.GroupByName(c.name); ok {
		fmt.Fprintf(os.Stderr, "a group named %q already exists\n", c.name)
		return subcommands.ExitFailure
	}

	group := b.AddGroup(c.name)
	if err := EncodeBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created group %q (%s)\n", group.Name, group.ID)
	return subcommands.ExitSuccess
}
