package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// renameGroupCmd holds the flags for the 'rename-group' subcommand.
type renameGroupCmd struct {
	group string
	name  string
}

func (*renameGroupCmd) Name() string     { return "rename-group" }
func (*renameGroupCmd) Synopsis() string { return "rename a group" }
func (*renameGroupCmd) Usage() string {
	return `sfi rename-group -g <group> -name <name>
`
}

func (c *renameGroupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "g", "", "Group to rename, by name or id.")
	f.StringVar(&c.name, "name", "", "The new name.")
}

func (c *renameGroupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := b.RenameGroup(group.ID, c.name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Renamed group %q to %q\n", group.Name, c.name)
	return subcommands.ExitSuccess
}
