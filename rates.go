package smartfi

import (
	"fmt"
	"math"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Rates is the explicit conversion state for cross-currency
// aggregation: how many COP one USD buys. It is passed into every
// computation that converts money; nothing in the engine reads a
// global rate.
type Rates struct {
	USDCOP decimal.Decimal
}

// NewRates creates a Rates with the given COP-per-USD rate.
func NewRates[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](usdcop T) Rates {
	return Rates{USDCOP: newDecimal(usdcop)}
}

// IsZero reports whether no rate is known.
func (r Rates) IsZero() bool { return r.USDCOP.IsZero() }

// Convert expresses m in the target currency. Same-currency conversion
// is the identity. Converting USD to COP multiplies by the rate,
// COP to USD divides. A missing rate degrades to zero rather than
// panicking on division.
func (r Rates) Convert(m Money, to Currency) Money {
	if m.Currency() == to || m.Currency() == "" {
		return M(m.Amount(), to)
	}
	switch {
	case m.Currency() == USD && to == COP:
		return M(m.Amount().Mul(r.USDCOP), COP)
	case m.Currency() == COP && to == USD:
		if r.USDCOP.IsZero() {
			return M(0, USD)
		}
		return M(m.Amount().Div(r.USDCOP), USD)
	}
	return M(m.Amount(), to)
}

// the rate service publishes quotes for a base currency as a JSON
// object; the COP quote is plucked out by path rather than by a
// dedicated response struct, the payload shape is not ours.
const rateServiceURL = "https://open.er-api.com/v6/latest/USD"

// FetchUSDCOP fetches the current COP-per-USD quote from the public
// rate service. The response is cached on disk for the day. On any
// failure the caller keeps its previous rate; there is no retry beyond
// the next scheduled attempt.
func FetchUSDCOP() (Rates, error) {
	var jobj any
	if err := jwget(daily(), rateServiceURL, &jobj); err != nil {
		return Rates{}, fmt.Errorf("error fetching %q: %w", "USD/COP", err)
	}
	path := "$.rates.COP"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Rates{}, fmt.Errorf("error parsing %q: %q %w", "USD/COP", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return Rates{}, fmt.Errorf("error parsing %q: %q %s %v", "USD/COP", path, "not a float", jval)
	}
	if val <= 0 || math.IsNaN(val) {
		return Rates{}, fmt.Errorf("rate service returned an unusable USD/COP quote: %v", val)
	}
	return NewRates(val), nil
}
