package smartfi

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// AccountType distinguishes asset accounts from credit accounts.
type AccountType string

const (
	// Debit accounts hold the user's own money (cash, savings, wallets).
	Debit AccountType = "debit"
	// Credit accounts track owed debt; their balance is the amount owed,
	// never negative by convention.
	Credit AccountType = "credit"
)

// ParseAccountType parses an account type string.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToLower(strings.TrimSpace(s))) {
	case Debit:
		return Debit, nil
	case Credit:
		return Credit, nil
	default:
		return "", fmt.Errorf("unknown account type %q (want debit or credit)", s)
	}
}

// Account is a single money holding (debit) or debt line (credit).
type Account struct {
	ID             string      `json:"id"`
	GroupID        string      `json:"groupId,omitempty"`
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	Currency       Currency    `json:"currency"`
	Balance        Money       `json:"balance"`
	CreditLimit    Money       `json:"creditLimit,omitempty"`
	InitialBalance Money       `json:"initialBalance"`
	CreatedAt      time.Time   `json:"createdAt"`
	Tag            string      `json:"tag,omitempty"`
	SortOrder      int         `json:"sortOrder"`
}

// IsCredit reports whether the account tracks owed debt.
func (a Account) IsCredit() bool { return a.Type == Credit }

// Validate checks the account for internal consistency.
func (a Account) Validate() error {
	var errs error
	if a.ID == "" {
		errs = errors.Join(errs, errors.New("account id is missing"))
	}
	if a.Name == "" {
		errs = errors.Join(errs, errors.New("account name is missing"))
	}
	if a.Type != Debit && a.Type != Credit {
		errs = errors.Join(errs, fmt.Errorf("unknown account type %q", a.Type))
	}
	if a.Currency != COP && a.Currency != USD {
		errs = errors.Join(errs, fmt.Errorf("unsupported currency %q", a.Currency))
	}
	if !a.CreditLimit.IsZero() && a.Type != Credit {
		errs = errors.Join(errs, fmt.Errorf("account %q is %s but has a credit limit", a.Name, a.Type))
	}
	if a.IsCredit() && a.Balance.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("credit account %q has a negative balance", a.Name))
	}
	return errs
}

// Group is a named set of accounts, with its own manual sort order.
type Group struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// newID returns a short random identifier for accounts, groups and
// transactions. Uniqueness within a single user's book is all that is
// required.
func newID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err) // rand.Read does not fail on supported platforms
	}
	return hex.EncodeToString(b[:])
}
