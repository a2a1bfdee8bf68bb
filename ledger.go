package smartfi

import (
	"iter"
	"sort"
)

// Ledger is the append-only list of transactions.
//
// In a Ledger transactions are always in chronological order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append appends transactions to this ledger and maintains the chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// stableSort sorts the ledger by transaction time. The sort is stable, meaning
// transactions at the same instant maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Time.Before(l.transactions[j].Time)
	})
}

// OldestTransactionDate returns the date of the earliest transaction in
// the ledger, or the zero Date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// NewestTransactionDate returns the date of the latest transaction in
// the ledger, or the zero Date if the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].When()
}

// Transactions returns an iterator over transactions in chronological
// order, restricted to those accepted by every filter.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !accepts(tx, filters) {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Backward returns an iterator over transactions in reverse
// chronological order (most recent first), restricted to those accepted
// by every filter. The history reconstruction walks the ledger this way.
func (l *Ledger) Backward(filters ...func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for i := len(l.transactions) - 1; i >= 0; i-- {
			tx := l.transactions[i]
			if !accepts(tx, filters) {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

func accepts(tx Transaction, filters []func(Transaction) bool) bool {
	for _, filter := range filters {
		if !filter(tx) {
			return false
		}
	}
	return true
}

// removeAccount drops every transaction belonging to the given account.
// This is the cascade effect of deleting an account.
func (l *Ledger) removeAccount(accountID string) {
	kept := l.transactions[:0]
	for _, tx := range l.transactions {
		if tx.AccountID != accountID {
			kept = append(kept, tx)
		}
	}
	l.transactions = kept
}

// ByAccount returns a predicate that filters transactions by account.
func ByAccount(accountID string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.AccountID == accountID }
}

// ByAccounts returns a predicate that filters transactions by a set of accounts.
func ByAccounts(ids map[string]bool) func(Transaction) bool {
	return func(tx Transaction) bool { return ids[tx.AccountID] }
}

// Since returns a predicate that keeps transactions on or after the
// start of day 'from'.
func Since(from Date) func(Transaction) bool {
	start := from.Time()
	return func(tx Transaction) bool { return !tx.Time.Before(start) }
}
