// Package cmd implements the CLI application to manage the tracker.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/its-camilo/smartfi"
)

// Register registers every subcommand on the commander. A main package
// calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newAccountCmd{}, "accounts")
	c.Register(&editAccountCmd{}, "accounts")
	c.Register(&rmAccountCmd{}, "accounts")
	c.Register(&listCmd{}, "accounts")
	c.Register(&moveCmd{}, "accounts")

	c.Register(&newGroupCmd{}, "groups")
	c.Register(&renameGroupCmd{}, "groups")
	c.Register(&rmGroupCmd{}, "groups")

	c.Register(&adjustCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&returnsCmd{}, "reports")

	c.Register(&rateCmd{}, "settings")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "book.json", "Path to the book file (settings, groups and accounts)")
var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file (transactions, JSONL format)")

// DecodeBook loads the book and its ledger from the app files.
func DecodeBook() (*smartfi.Book, error) {
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book file does not exist, starting with an empty book")
		return smartfi.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", *bookFile, err)
	}
	defer f.Close()

	b, err := smartfi.DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", *bookFile, err)
	}

	lf, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer lf.Close()

	ledger, err := smartfi.DecodeLedger(lf, b.CurrencyOf)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	b.SetLedger(ledger)
	return b, nil
}

// EncodeBook persists the book (not its ledger) to the app book file.
func EncodeBook(b *smartfi.Book) error {
	f, err := os.Create(*bookFile)
	if err != nil {
		return fmt.Errorf("could not create book file %q: %w", *bookFile, err)
	}
	defer f.Close()
	return smartfi.EncodeBook(f, b)
}

// EncodeLedger rewrites the whole ledger file in canonical form.
func EncodeLedger(l *smartfi.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return smartfi.EncodeLedger(f, l)
}

// AppendTransaction appends a single transaction to the app ledger file.
func AppendTransaction(tx smartfi.Transaction) subcommands.ExitStatus {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := smartfi.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// resolveAccount finds an account by name first, then by id.
func resolveAccount(b *smartfi.Book, nameOrID string) (smartfi.Account, error) {
	if a, ok := b.AccountByName(nameOrID); ok {
		return a, nil
	}
	if a, ok := b.Account(nameOrID); ok {
		return a, nil
	}
	return smartfi.Account{}, fmt.Errorf("no account named %q", nameOrID)
}

// resolveGroup finds a group by name first, then by id.
func resolveGroup(b *smartfi.Book, nameOrID string) (smartfi.Group, error) {
	if g, ok := b.GroupByName(nameOrID); ok {
		return g, nil
	}
	if g, ok := b.Group(nameOrID); ok {
		return g, nil
	}
	return smartfi.Group{}, fmt.Errorf("no group named %q", nameOrID)
}
