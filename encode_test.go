package smartfi

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestBookRoundTrip(t *testing.T) {
	b := newTestBook(t)
	g := b.AddGroup("Banks")
	addAccount(t, b, "Savings", Debit, COP, 1_000_000, 0, g.ID, "cash")
	addAccount(t, b, "Visa", Credit, COP, 200_000, 900_000, "", "")
	addAccount(t, b, "Broker", Debit, USD, 150, 0, "", "invest")

	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		t.Fatalf("EncodeBook() error = %v", err)
	}

	got, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}

	if !got.Settings.USDCOP.Equal(b.Settings.USDCOP) {
		t.Errorf("Settings.USDCOP = %v, want %v", got.Settings.USDCOP, b.Settings.USDCOP)
	}
	if got.Settings.ProjectStart != b.Settings.ProjectStart {
		t.Errorf("Settings.ProjectStart = %v, want %v", got.Settings.ProjectStart, b.Settings.ProjectStart)
	}
	if len(got.Accounts()) != 3 {
		t.Fatalf("decoded %d accounts, want 3", len(got.Accounts()))
	}
	for i, want := range b.Accounts() {
		a := got.Accounts()[i]
		if a.ID != want.ID || a.Name != want.Name || a.Type != want.Type ||
			a.Currency != want.Currency || a.GroupID != want.GroupID ||
			a.Tag != want.Tag || a.SortOrder != want.SortOrder {
			t.Errorf("account %d = %+v, want %+v", i, a, want)
		}
		if !a.Balance.Equal(want.Balance) {
			t.Errorf("account %q Balance = %v, want %v", a.Name, a.Balance, want.Balance)
		}
		if !a.CreditLimit.Equal(want.CreditLimit) {
			t.Errorf("account %q CreditLimit = %v, want %v", a.Name, a.CreditLimit, want.CreditLimit)
		}
	}
	if len(got.Groups()) != 1 || got.Groups()[0].Name != "Banks" {
		t.Errorf("decoded groups = %+v", got.Groups())
	}
}

func TestDecodeBook_RejectsInvalidAccount(t *testing.T) {
	// a debit account must not carry a credit limit
	const doc = `{
	  "settings": {"usdcop": 4000, "projectStart": "2025-01-01"},
	  "accounts": [
	    {"id": "x", "name": "Bad", "type": "debit", "currency": "COP",
	     "balance": 0, "creditLimit": 500000, "initialBalance": 0,
	     "createdAt": "2025-01-01T00:00:00Z", "sortOrder": 0}
	  ]
	}`
	if _, err := DecodeBook(strings.NewReader(doc)); err == nil {
		t.Error("DecodeBook() accepted a debit account with a credit limit")
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	b := newTestBook(t)
	savings := addAccount(t, b, "Savings", Debit, COP, 0, 0, "", "")
	broker := addAccount(t, b, "Broker", Debit, USD, 0, 0, "", "")

	adjustAt(t, b, savings.ID, 250_000, at(2025, time.February, 1, 9))
	adjustAt(t, b, broker.ID, 100, at(2025, time.February, 2, 9))
	adjustAt(t, b, savings.ID, -50_000, at(2025, time.February, 3, 9))

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, b.Ledger()); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	got, err := DecodeLedger(bytes.NewReader(buf.Bytes()), b.CurrencyOf)
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if got.Len() != b.Ledger().Len() {
		t.Fatalf("decoded %d transactions, want %d", got.Len(), b.Ledger().Len())
	}

	wantTxs := make([]Transaction, 0, b.Ledger().Len())
	for _, tx := range b.Ledger().Transactions() {
		wantTxs = append(wantTxs, tx)
	}
	i := 0
	for _, tx := range got.Transactions() {
		want := wantTxs[i]
		if tx.ID != want.ID || tx.AccountID != want.AccountID {
			t.Errorf("transaction %d identity = %s/%s, want %s/%s", i, tx.ID, tx.AccountID, want.ID, want.AccountID)
		}
		if !tx.Amount.Equal(want.Amount) {
			t.Errorf("transaction %d Amount = %v, want %v", i, tx.Amount, want.Amount)
		}
		if !tx.Balance.Equal(want.Balance) {
			t.Errorf("transaction %d Balance = %v, want %v", i, tx.Balance, want.Balance)
		}
		if !tx.Time.Equal(want.Time) {
			t.Errorf("transaction %d Time = %v, want %v", i, tx.Time, want.Time)
		}
		if !tx.Rate.Equal(want.Rate) {
			t.Errorf("transaction %d Rate = %v, want %v", i, tx.Rate, want.Rate)
		}
		i++
	}
}

func TestEncodeLedger_Canonical(t *testing.T) {
	b := newTestBook(t)
	savings := addAccount(t, b, "Savings", Debit, COP, 0, 0, "", "")
	adjustAt(t, b, savings.ID, 100_000, at(2025, time.February, 1, 9))

	var first, second bytes.Buffer
	if err := EncodeLedger(&first, b.Ledger()); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	if err := EncodeLedger(&second, b.Ledger()); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two encodes of the same ledger differ")
	}

	line := strings.TrimSpace(first.String())
	for _, key := range []string{`"id"`, `"accountId"`, `"amount"`, `"newBalance"`, `"time"`, `"rate"`} {
		if !strings.Contains(line, key) {
			t.Errorf("encoded line misses key %s: %s", key, line)
		}
	}
	// keys keep their canonical order
	if strings.Index(line, `"accountId"`) < strings.Index(line, `"id"`) ||
		strings.Index(line, `"amount"`) < strings.Index(line, `"accountId"`) {
		t.Errorf("encoded line keys out of order: %s", line)
	}
}

func TestDecodeLedger_SkipsEmptyLines(t *testing.T) {
	const doc = `
{"id":"t1","accountId":"a1","amount":100,"newBalance":100,"time":"2025-02-01T09:00:00Z","rate":4000}

{"id":"t2","accountId":"a1","amount":50,"newBalance":150,"time":"2025-02-02T09:00:00Z","rate":4000}
`
	ledger, err := DecodeLedger(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if ledger.Len() != 2 {
		t.Errorf("decoded %d transactions, want 2", ledger.Len())
	}
}

func TestDecodeLedger_RejectsGarbage(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("not json\n"), nil); err == nil {
		t.Error("DecodeLedger() accepted a malformed line")
	}
}
