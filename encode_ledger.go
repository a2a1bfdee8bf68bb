package smartfi

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// txRecord is the wire form of a transaction line in the JSONL ledger.
// Amounts are bare decimals; the currency is the owning account's and
// is resolved at decode time.
type txRecord struct {
	ID         string          `json:"id"`
	AccountID  string          `json:"accountId"`
	Amount     decimal.Decimal `json:"amount"`
	NewBalance decimal.Decimal `json:"newBalance"`
	Time       time.Time       `json:"time"`
	Rate       decimal.Decimal `json:"rate"`
}

// DecodeLedger decodes transactions from a stream of JSONL data,
// resolves each transaction's currency against the accounts, and
// returns a chronologically sorted Ledger. Transactions of deleted
// accounts decode with an unset currency.
func DecodeLedger(r io.Reader, currencyOf func(accountID string) Currency) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var rec txRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode ledger line %q: %w", string(lineBytes), err)
		}
		var cur Currency
		if currencyOf != nil {
			cur = currencyOf(rec.AccountID)
		}
		ledger.Append(Transaction{
			ID:        rec.ID,
			AccountID: rec.AccountID,
			Amount:    M(rec.Amount, cur),
			Balance:   M(rec.NewBalance, cur),
			Time:      rec.Time,
			Rate:      rec.Rate,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return ledger, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it
// to the writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger persists the transactions to an io.Writer in JSONL
// format, in chronological order with canonical key order, so that two
// encodes of the same ledger are byte-identical.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true
	ledger.stableSort()
	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
