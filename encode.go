package smartfi

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// The book file holds everything but the ledger: settings, groups and
// accounts, as one pretty-printed JSON document.

type bookRecord struct {
	Settings Settings        `json:"settings"`
	Groups   []Group         `json:"groups,omitempty"`
	Accounts []accountRecord `json:"accounts,omitempty"`
}

// accountRecord is the wire form of an account: amounts are bare
// decimals in the account's currency.
type accountRecord struct {
	ID             string          `json:"id"`
	GroupID        string          `json:"groupId,omitempty"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	Currency       Currency        `json:"currency"`
	Balance        decimal.Decimal `json:"balance"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	Tag            string          `json:"tag,omitempty"`
	SortOrder      int             `json:"sortOrder"`
}

// EncodeBook persists the book (without its ledger) as JSON.
func EncodeBook(w io.Writer, b *Book) error {
	decimal.MarshalJSONWithoutQuotes = true
	rec := bookRecord{
		Settings: b.Settings,
		Groups:   b.Groups(),
	}
	for _, a := range b.Accounts() {
		rec.Accounts = append(rec.Accounts, accountRecord{
			ID:             a.ID,
			GroupID:        a.GroupID,
			Name:           a.Name,
			Type:           a.Type,
			Currency:       a.Currency,
			Balance:        a.Balance.Amount(),
			CreditLimit:    a.CreditLimit.Amount(),
			InitialBalance: a.InitialBalance.Amount(),
			CreatedAt:      a.CreatedAt.UTC(),
			Tag:            a.Tag,
			SortOrder:      a.SortOrder,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode book: %w", err)
	}
	return nil
}

// DecodeBook reads a book (without its ledger) from JSON and validates
// every account.
func DecodeBook(r io.Reader) (*Book, error) {
	var rec bookRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode book: %w", err)
	}

	b := NewBook()
	b.Settings = rec.Settings
	if b.Settings.ProjectStart.IsZero() {
		b.Settings.ProjectStart = Today()
	}
	b.groups = rec.Groups
	for _, a := range rec.Accounts {
		account := Account{
			ID:             a.ID,
			GroupID:        a.GroupID,
			Name:           a.Name,
			Type:           a.Type,
			Currency:       a.Currency,
			Balance:        M(a.Balance, a.Currency),
			InitialBalance: M(a.InitialBalance, a.Currency),
			CreatedAt:      a.CreatedAt,
			Tag:            a.Tag,
			SortOrder:      a.SortOrder,
		}
		if !a.CreditLimit.IsZero() {
			account.CreditLimit = M(a.CreditLimit, a.Currency)
		}
		if err := account.Validate(); err != nil {
			return nil, fmt.Errorf("invalid account %q in book file: %w", a.Name, err)
		}
		b.accounts = append(b.accounts, account)
	}
	return b, nil
}

// CurrencyOf returns the resolver used to give decoded ledger lines
// their account currency.
func (b *Book) CurrencyOf(accountID string) Currency {
	if a, ok := b.Account(accountID); ok {
		return a.Currency
	}
	return ""
}

// SetLedger attaches a decoded ledger to the book.
func (b *Book) SetLedger(l *Ledger) { b.ledger = l }
