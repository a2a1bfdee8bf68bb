package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/its-camilo/smartfi"
)

// editAccountCmd holds the flags for the 'edit-account' subcommand.
type editAccountCmd struct {
	account string
	name    string
	group   string
	ungroup bool
	tag     string
	limit   float64
}

func (*editAccountCmd) Name() string     { return "edit-account" }
func (*editAccountCmd) Synopsis() string { return "rename, retag, regroup or relimit an account" }
func (*editAccountCmd) Usage() string {
	return `sfi edit-account -a <account> [-name <name>] [-group <group> | -ungroup] [-tag <tag>] [-limit <amount>]

  Edits the mutable attributes of an account. The balance is never
  edited directly: record an adjustment instead.
`
}

func (c *editAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to edit, by name or id.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.group, "group", "", "Move the account into this group.")
	f.BoolVar(&c.ungroup, "ungroup", false, "Detach the account from its group.")
	f.StringVar(&c.tag, "tag", "", "New tag. Use -tag \"\" to clear it.")
	f.Float64Var(&c.limit, "limit", -1, "New credit limit, for credit accounts.")
}

func (c *editAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account, err := resolveAccount(b, c.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.name != "" {
		account.Name = c.name
	}
	if c.ungroup {
		account.GroupID = ""
	} else if c.group != "" {
		g, err := resolveGroup(b, c.group)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		account.GroupID = g.ID
	}
	if tagSet(f) {
		account.Tag = c.tag
	}
	if c.limit >= 0 {
		account.CreditLimit = smartfi.M(c.limit, account.Currency)
	}

	if err := b.UpdateAccount(account); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated account %q\n", account.Name)
	return subcommands.ExitSuccess
}

// tagSet reports whether -tag was given at all, so that an empty value
// clears the tag instead of meaning "unchanged".
func tagSet(f *flag.FlagSet) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "tag" {
			set = true
		}
	})
	return set
}
