package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/its-camilo/smartfi"
)

// rmAccountCmd holds the flags for the 'rm-account' subcommand.
type rmAccountCmd struct {
	account string
	force   bool
}

func (*rmAccountCmd) Name() string     { return "rm-account" }
func (*rmAccountCmd) Synopsis() string { return "delete an account and all of its transactions" }
func (*rmAccountCmd) Usage() string {
	return `sfi rm-account -a <account> [-f]

  Deletes an account. All of its transactions disappear with it, so the
  command refuses to run on an account with history unless -f is given.
`
}

func (c *rmAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to delete, by name or id.")
	f.BoolVar(&c.force, "f", false, "Delete even when the account has transactions.")
}

func (c *rmAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	owned := 0
	for range b.Ledger().Transactions(smartfi.ByAccount(account.ID)) {
		owned++
	}
	if owned > 0 && !c.force {
		fmt.Fprintf(os.Stderr, "account %q has %d transactions, use -f to delete them too\n", account.Name, owned)
		return subcommands.ExitFailure
	}

	if err := b.DeleteAccount(account.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeLedger(b.Ledger()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted account %q and %d transactions\n", account.Name, owned)
	return subcommands.ExitSuccess
}
