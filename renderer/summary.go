package renderer

import (
	"github.com/its-camilo/smartfi"
)

// Summary is the view of a present valuation, with every amount already
// formatted for display.
type Summary struct {
	Date             string
	Currency         string
	TotalAssets      string
	TotalLiabilities string
	NetWorth         string
	Liquidity        string
	CreditLimitTotal string
	BuyingPower      string
}

// NewSummary builds the summary view for a valuation on a given day.
func NewSummary(on smartfi.Date, v smartfi.Valuation) *Summary {
	return &Summary{
		Date:             on.String(),
		Currency:         string(v.Currency),
		TotalAssets:      v.TotalAssets.String(),
		TotalLiabilities: v.TotalLiabilities.String(),
		NetWorth:         v.NetWorth.String(),
		Liquidity:        v.Liquidity.String(),
		CreditLimitTotal: v.CreditLimitTotal.String(),
		BuyingPower:      v.BuyingPower.String(),
	}
}
