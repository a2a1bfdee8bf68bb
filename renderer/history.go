package renderer

import (
	"github.com/its-camilo/smartfi"
)

// History is the view of a reconstructed net worth series.
type History struct {
	Currency string
	Entries  []HistoryEntry
}

// HistoryEntry is one day of the series, formatted for display.
type HistoryEntry struct {
	Date        string
	NetWorth    string
	Liquidity   string
	BuyingPower string
}

// NewHistory builds the history view from the reconstructed points.
func NewHistory(points []smartfi.HistoryPoint, target smartfi.Currency) *History {
	h := &History{Currency: string(target)}
	for _, p := range points {
		h.Entries = append(h.Entries, HistoryEntry{
			Date:        p.Date.String(),
			NetWorth:    p.NetWorth.String(),
			Liquidity:   p.Liquidity.String(),
			BuyingPower: p.BuyingPower.String(),
		})
	}
	return h
}
