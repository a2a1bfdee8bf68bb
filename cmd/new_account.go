package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/its-camilo/smartfi"
)

// newAccountCmd holds the flags for the 'new-account' subcommand.
type newAccountCmd struct {
	name     string
	typ      string
	currency string
	balance  float64
	limit    float64
	group    string
	tag      string
}

func (*newAccountCmd) Name() string     { return "new-account" }
func (*newAccountCmd) Synopsis() string { return "create a debit or credit account" }
func (*newAccountCmd) Usage() string {
	return `sfi new-account -name <name> [-type debit|credit] [-cur COP|USD] [-balance <amount>] [-limit <amount>] [-group <group>] [-tag <tag>]

  Creates an account. The opening balance is recorded on the account
  itself, not as a transaction. Only credit accounts take a -limit.
`
}

func (c *newAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the new account.")
	f.StringVar(&c.typ, "type", "debit", "Account type: debit or credit.")
	f.StringVar(&c.currency, "cur", "COP", "Account currency: COP or USD.")
	f.Float64Var(&c.balance, "balance", 0, "Opening balance, in the account currency.")
	f.Float64Var(&c.limit, "limit", 0, "Credit limit, for credit accounts only.")
	f.StringVar(&c.group, "group", "", "Group to place the account in.")
	f.StringVar(&c.tag, "tag", "", "Free-form tag, usable as a report scope.")
}

func (c *newAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := smartfi.ParseAccountType(c.typ)
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

	groupID := ""
	if c.group != "" {
		g, err := resolveGroup(b, c.group)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		groupID = g.ID
	}

	account, err := b.AddAccount(c.name, typ, cur, smartfi.M(c.balance, cur), smartfi.M(c.limit, cur), groupID, c.tag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created %s account %q (%s)\n", account.Type, account.Name, account.ID)
	return subcommands.ExitSuccess
}
