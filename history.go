package smartfi

import "iter"

// HistoryPoint is one day in the reconstructed valuation series.
type HistoryPoint struct {
	Date        Date
	NetWorth    Money
	Liquidity   Money
	BuyingPower Money
}

// History reconstructs the day-by-day valuation series from 'from' to
// 'to' (inclusive), in the target currency, without any stored
// snapshots: it starts from the present aggregate and replays the
// ledger backward, undoing each transaction before crossing the day
// boundary it belongs to.
//
// The converted amount of each transaction uses the exchange rate
// recorded at transaction time. Transactions whose account no longer
// exists are skipped: with the account gone there is no way to bucket
// them into liquidity or liabilities.
//
// The returned points are in chronological order, and there is always
// at least one point (the 'to' day) even when the range is empty.
func History(accounts []Account, ledger *Ledger, rates Rates, from, to Date, target Currency) []HistoryPoint {
	if to.Before(from) {
		from = to
	}

	byID := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	// Present aggregates, the starting point of the backward walk.
	current := NewValuation(accounts, rates, target)
	liquidity := current.Liquidity.Amount()
	liabilities := current.TotalLiabilities.Amount()
	// Limit changes are not replayed: the present total is treated as
	// constant across the whole window.
	limits := current.CreditLimitTotal.Amount()

	days := from.DaysUntil(to) + 1
	points := make([]HistoryPoint, 0, days)

	// Merge the reversed transaction stream against the day cursor:
	// a point reflects the end of its day, so before emitting 'on'
	// every transaction from later days is undone exactly once.
	next, stop := iter.Pull(ledger.Backward())
	defer stop()
	tx, ok := next()
	for on := to; !on.Before(from); on = on.Add(-1) {
		for ok && !tx.Time.Before(on.Add(1).Time()) {
			if account, exists := byID[tx.AccountID]; exists {
				value := tx.value(account.Currency, target)
				if account.IsCredit() {
					liabilities = liabilities.Sub(value)
				} else {
					liquidity = liquidity.Sub(value)
				}
			}
			tx, ok = next()
		}
		points = append(points, HistoryPoint{
			Date:        on,
			NetWorth:    M(liquidity.Sub(liabilities), target),
			Liquidity:   M(liquidity, target),
			BuyingPower: M(liquidity.Add(limits.Sub(liabilities)), target),
		})
	}

	// The walk emitted points newest first; charts want them ascending.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}
