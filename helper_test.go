package smartfi

import (
	"testing"
	"time"
)

// newTestBook returns a book with a fixed 4000 COP/USD rate and a
// stable project start, so that tests do not depend on the wall clock.
func newTestBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook()
	b.Settings.USDCOP = newDecimal(4000)
	b.Settings.ProjectStart = NewDate(2025, time.January, 1)
	return b
}

// addAccount creates an account on the book or fails the test.
func addAccount(t *testing.T, b *Book, name string, typ AccountType, cur Currency, balance, limit float64, groupID, tag string) Account {
	t.Helper()
	a, err := b.AddAccount(name, typ, cur, M(balance, cur), M(limit, cur), groupID, tag)
	if err != nil {
		t.Fatalf("AddAccount(%q) error = %v", name, err)
	}
	return a
}

// adjustAt records a balance change at a fixed instant or fails the test.
func adjustAt(t *testing.T, b *Book, accountID string, amount float64, at time.Time) Transaction {
	t.Helper()
	account, ok := b.Account(accountID)
	if !ok {
		t.Fatalf("unknown account %q", accountID)
	}
	tx, err := b.Adjust(accountID, M(amount, account.Currency), at)
	if err != nil {
		t.Fatalf("Adjust(%q, %v) error = %v", accountID, amount, err)
	}
	return tx
}

// wantMoney fails the test unless got equals the expected value.
func wantMoney(t *testing.T, label string, got Money, want float64) {
	t.Helper()
	if !got.Amount().Equal(newDecimal(want)) {
		t.Errorf("%s = %v, want %v", label, got.Amount(), want)
	}
}
