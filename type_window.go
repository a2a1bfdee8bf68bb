package smartfi

import (
	"fmt"
	"strings"
)

// Window is the measurement span for performance reports: the last
// 1, 3, 6 or 12 months, or everything since the first transaction.
type Window int

const (
	LastMonth Window = iota
	Last3Months
	Last6Months
	LastYear
	SinceStart
)

func (w Window) String() string {
	switch w {
	case LastMonth:
		return "1m"
	case Last3Months:
		return "3m"
	case Last6Months:
		return "6m"
	case LastYear:
		return "12m"
	case SinceStart:
		return "all"
	default:
		return "window"
	}
}

// Name returns a human readable name for the window.
func (w Window) Name() string {
	switch w {
	case LastMonth:
		return "last month"
	case Last3Months:
		return "last 3 months"
	case Last6Months:
		return "last 6 months"
	case LastYear:
		return "last 12 months"
	case SinceStart:
		return "since start"
	default:
		return "window"
	}
}

// Months returns the window length in months, or 0 for SinceStart.
func (w Window) Months() int {
	switch w {
	case LastMonth:
		return 1
	case Last3Months:
		return 3
	case Last6Months:
		return 6
	case LastYear:
		return 12
	default:
		return 0
	}
}

// Start returns the first day of the window ending today. For
// SinceStart the result is the zero Date: the caller substitutes the
// project start.
func (w Window) Start(today Date) Date {
	months := w.Months()
	if months == 0 {
		return Date{}
	}
	return today.AddMonth(-months)
}

// Years returns the window length in years, never less than 1 so that
// annualization cannot blow up on short windows. For SinceStart the
// length is measured from 'start' to 'today'.
func (w Window) Years(start, today Date) float64 {
	if months := w.Months(); months > 0 {
		years := float64(months) / 12
		if years < 1 {
			return 1
		}
		return years
	}
	years := float64(start.DaysUntil(today)) / 365.25
	if years < 1 {
		return 1
	}
	return years
}

func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1m", "1":
		return LastMonth, nil
	case "3m", "3":
		return Last3Months, nil
	case "6m", "6":
		return Last6Months, nil
	case "12m", "12", "1y":
		return LastYear, nil
	case "all", "max":
		return SinceStart, nil
	default:
		return LastMonth, fmt.Errorf("unknown window %q (want 1m, 3m, 6m, 12m or all)", s)
	}
}
