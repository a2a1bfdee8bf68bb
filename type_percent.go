package smartfi

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Ratio returns the percent as a plain ratio (5% -> 0.05).
func (p Percent) Ratio() float64 { return float64(p) / 100 }

// PercentOfRatio turns a ratio into a Percent (0.05 -> 5%).
func PercentOfRatio(r float64) Percent { return Percent(100 * r) }
