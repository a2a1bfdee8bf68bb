package smartfi

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records a single balance change on an account. The ledger
// is append-only: transactions are never edited once written, and only
// disappear as a cascade of deleting their owning account.
type Transaction struct {
	ID        string          `json:"id"`
	AccountID string          `json:"accountId"`
	Amount    Money           `json:"amount"`     // signed delta, in the account's currency
	Balance   Money           `json:"newBalance"` // account balance right after applying Amount
	Time      time.Time       `json:"time"`
	Rate      decimal.Decimal `json:"rate"` // COP per USD in effect at transaction time, zero if unknown
}

// When returns the day the transaction occurred.
func (t Transaction) When() Date { return DateOf(t.Time) }

// Validate checks the transaction invariants against the balance the
// account had just before it.
func (t Transaction) Validate(previousBalance Money) error {
	var errs error
	if t.ID == "" {
		errs = errors.Join(errs, errors.New("transaction id is missing"))
	}
	if t.AccountID == "" {
		errs = errors.Join(errs, errors.New("transaction account id is missing"))
	}
	if t.Time.IsZero() {
		errs = errors.Join(errs, errors.New("transaction time is missing"))
	}
	if want := previousBalance.Add(t.Amount); !t.Balance.Equal(want) {
		errs = errors.Join(errs, fmt.Errorf("new balance %s does not equal previous balance plus amount (%s)", t.Balance, want))
	}
	return errs
}

// value returns the transaction amount expressed in 'target', using the
// exchange rate recorded at transaction time. When no rate was
// recorded, the raw amount is used as-is: an old data file is better
// reported approximately than not at all.
func (t Transaction) value(accountCurrency, target Currency) decimal.Decimal {
	if accountCurrency == target || t.Rate.IsZero() {
		return t.Amount.Amount()
	}
	switch {
	case accountCurrency == USD && target == COP:
		return t.Amount.Amount().Mul(t.Rate)
	case accountCurrency == COP && target == USD:
		return t.Amount.Amount().Div(t.Rate)
	}
	return t.Amount.Amount()
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("accountId", t.AccountID)
	w.Append("amount", t.Amount.Amount())
	w.Append("newBalance", t.Balance.Amount())
	w.Append("time", t.Time.UTC().Format(time.RFC3339))
	w.Optional("rate", t.Rate)
	return w.MarshalJSON()
}
