package smartfi

import (
	"fmt"
	"math"
)

// Scope selects the subset of accounts a performance report covers:
// everything, one group, or the accounts sharing one tag. The zero
// Scope covers all accounts.
type Scope struct {
	GroupID string
	Tag     string
}

// All reports whether the scope covers every account.
func (s Scope) All() bool { return s.GroupID == "" && s.Tag == "" }

// Matches reports whether the account is in scope.
func (s Scope) Matches(a Account) bool {
	if s.GroupID != "" && a.GroupID != s.GroupID {
		return false
	}
	if s.Tag != "" && a.Tag != s.Tag {
		return false
	}
	return true
}

func (s Scope) String() string {
	switch {
	case s.GroupID != "" && s.Tag != "":
		return fmt.Sprintf("group %s, tag %s", s.GroupID, s.Tag)
	case s.GroupID != "":
		return "group " + s.GroupID
	case s.Tag != "":
		return "tag " + s.Tag
	default:
		return "all accounts"
	}
}

// Projection is the projected valuation a fixed number of months ahead.
type Projection struct {
	Months int
	Value  Money
}

// Report is the outcome of a performance computation over a window.
type Report struct {
	Scope            Scope
	Window           Window
	Currency         Currency
	CurrentVal       Money
	StartVal         Money
	NormalReturn     Percent
	AnnualizedReturn Percent // the "EA": constant yearly rate equivalent to the window's return
	Projections      []Projection
}

// Performance computes the return and projections for the in-scope
// accounts over the given window, in the target currency.
//
// The valuation at the window start is not stored anywhere: it is
// inferred by subtracting the windowed in-scope transactions from the
// present net valuation, mirroring the history reconstruction. All the
// degenerate cases (no accounts in scope, no transactions in the
// window, zero starting valuation) yield zero returns with the current
// valuation still reported, never an error.
// 'on' is the day the window ends, normally today.
func Performance(accounts []Account, ledger *Ledger, scope Scope, window Window, on Date, rates Rates, target Currency) Report {
	report := Report{
		Scope:    scope,
		Window:   window,
		Currency: target,
	}

	scoped := make([]Account, 0, len(accounts))
	inScope := make(map[string]bool, len(accounts))
	byID := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
		if scope.Matches(a) {
			scoped = append(scoped, a)
			inScope[a.ID] = true
		}
	}

	report.CurrentVal = NetValue(scoped, rates, target)

	start := window.Start(on)
	if start.IsZero() {
		start = ledger.OldestTransactionDate()
		if start.IsZero() {
			start = on
		}
	}

	// Reverse-replay only the windowed transactions to infer the
	// valuation at the window start. Credit amounts raise debt, so they
	// lower the net value.
	flow := report.CurrentVal.Amount()
	for _, tx := range ledger.Transactions(ByAccounts(inScope), Since(start)) {
		account := byID[tx.AccountID]
		value := tx.value(account.Currency, target)
		if account.IsCredit() {
			flow = flow.Add(value)
		} else {
			flow = flow.Sub(value)
		}
	}
	report.StartVal = M(flow, target)

	cur, base := report.CurrentVal.AsFloat(), report.StartVal.AsFloat()
	if base == 0 {
		// A zero starting valuation makes the return meaningless:
		// display 0% rather than divide.
		report.Projections = projections(cur, 0, target)
		return report
	}

	ratio := cur / base
	report.NormalReturn = PercentOfRatio(ratio - 1)

	years := window.Years(start, on)
	if ratio > 0 {
		report.AnnualizedReturn = PercentOfRatio(math.Pow(ratio, 1/years) - 1)
	}
	report.Projections = projections(cur, report.AnnualizedReturn.Ratio(), target)
	return report
}

// projections forward-compounds the current valuation at the monthly
// rate equivalent to the annualized return, at the fixed 3, 6 and 12
// month checkpoints.
func projections(current, annualized float64, target Currency) []Projection {
	monthly := math.Pow(1+annualized, 1.0/12) - 1
	result := make([]Projection, 0, 3)
	for _, months := range []int{3, 6, 12} {
		value := current * math.Pow(1+monthly, float64(months))
		result = append(result, Projection{Months: months, Value: M(value, target)})
	}
	return result
}
