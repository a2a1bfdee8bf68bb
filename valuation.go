package smartfi

// Valuation is the aggregate view of an account set at the present
// instant, expressed in a single reporting currency.
type Valuation struct {
	Currency         Currency
	TotalAssets      Money
	TotalLiabilities Money
	NetWorth         Money
	Liquidity        Money
	CreditLimitTotal Money
	BuyingPower      Money
}

// NewValuation folds the accounts into aggregate metrics, converting
// every balance to the target currency at the given rate. It is a pure
// function of its inputs: callers recompute it whenever the accounts or
// the rate change.
//
// Debit balances count as assets and liquidity; credit balances count
// as liabilities. Buying power is the liquid funds plus the unused
// credit capacity (total limits minus owed debt).
func NewValuation(accounts []Account, rates Rates, target Currency) Valuation {
	assets := M(0, target)
	liabilities := M(0, target)
	limits := M(0, target)

	for _, a := range accounts {
		balance := rates.Convert(a.Balance, target)
		if a.IsCredit() {
			liabilities = liabilities.Add(balance)
			limits = limits.Add(rates.Convert(a.CreditLimit, target))
		} else {
			assets = assets.Add(balance)
		}
	}

	liquidity := assets
	return Valuation{
		Currency:         target,
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		NetWorth:         assets.Sub(liabilities),
		Liquidity:        liquidity,
		CreditLimitTotal: limits,
		BuyingPower:      liquidity.Add(limits.Sub(liabilities)),
	}
}

// NetValue returns the net valuation of the accounts (assets minus
// liabilities): the net-worth subtraction rule restricted to whatever
// subset the caller passes in.
func NetValue(accounts []Account, rates Rates, target Currency) Money {
	v := NewValuation(accounts, rates, target)
	return v.NetWorth
}
