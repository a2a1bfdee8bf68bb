package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/its-camilo/smartfi"
)

// adjustCmd holds the flags for the 'adjust' subcommand.
type adjustCmd struct {
	account string
	amount  float64
	date    string
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "record a balance change on an account" }
func (*adjustCmd) Usage() string {
	return `sfi adjust -a <account> -amount <amount> [-d <date>]

  Records a signed balance change in the account's own currency. On a
  credit account a positive amount is new debt, a negative one a
  payment. The exchange rate in effect is recorded with the
  transaction.
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to adjust, by name or id.")
	f.Float64Var(&c.amount, "amount", 0, "Signed amount, in the account currency.")
	f.StringVar(&c.date, "d", "", "Day of the change. Defaults to now.")
}

func (c *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var at time.Time
	if c.date != "" {
		on, err := smartfi.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		at = on.Time()
	}

	tx, err := b.Adjust(account.ID, smartfi.M(c.amount, account.Currency), at)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The account balance changed too, so both files are written.
	if err := EncodeBook(b); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := AppendTransaction(tx); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Adjusted %q by %s, new balance %s\n", account.Name, tx.Amount.SignedString(), tx.Balance)
	return subcommands.ExitSuccess
}
