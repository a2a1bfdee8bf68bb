package renderer

import (
	"github.com/its-camilo/smartfi"
)

// Returns is the view of a performance report.
type Returns struct {
	Scope            string
	Window           string
	Currency         string
	CurrentVal       string
	StartVal         string
	NormalReturn     string
	AnnualizedReturn string
	Projections      []ProjectionRow
}

// ProjectionRow is one projected valuation checkpoint.
type ProjectionRow struct {
	Months int
	Value  string
}

// NewReturns builds the returns view from a performance report.
func NewReturns(r smartfi.Report) *Returns {
	out := &Returns{
		Scope:            r.Scope.String(),
		Window:           r.Window.Name(),
		Currency:         string(r.Currency),
		CurrentVal:       r.CurrentVal.String(),
		StartVal:         r.StartVal.String(),
		NormalReturn:     r.NormalReturn.SignedString(),
		AnnualizedReturn: r.AnnualizedReturn.SignedString(),
	}
	for _, p := range r.Projections {
		out.Projections = append(out.Projections, ProjectionRow{
			Months: p.Months,
			Value:  p.Value.String(),
		})
	}
	return out
}
