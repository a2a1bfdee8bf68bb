package smartfi

import (
	"math"
	"testing"
	"time"
)

func wantPercent(t *testing.T, label string, got, want Percent) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func TestPerformance_SimpleGain(t *testing.T) {
	b := newTestBook(t)
	savings := addAccount(t, b, "Savings", Debit, COP, 1_000_000, 0, "", "")

	on := NewDate(2025, time.June, 15)
	adjustAt(t, b, savings.ID, 500_000, at(2025, time.June, 14, 12))

	report := Performance(b.Accounts(), b.Ledger(), Scope{}, LastMonth, on, b.Settings.Rates(), COP)

	wantMoney(t, "CurrentVal", report.CurrentVal, 1_500_000)
	wantMoney(t, "StartVal", report.StartVal, 1_000_000)
	wantPercent(t, "NormalReturn", report.NormalReturn, 50)
	// a 1 month window annualizes over a floor of one year
	wantPercent(t, "AnnualizedReturn", report.AnnualizedReturn, 50)

	// projections compound the current valuation at the monthly rate
	// equivalent to the annualized return
	monthly := math.Pow(1.5, 1.0/12) - 1
	if len(report.Projections) != 3 {
		t.Fatalf("got %d projections, want 3", len(report.Projections))
	}
	for i, months := range []int{3, 6, 12} {
		p := report.Projections[i]
		if p.Months != months {
			t.Errorf("Projections[%d].Months = %d, want %d", i, p.Months, months)
		}
		want := 1_500_000 * math.Pow(1+monthly, float64(months))
		if got := p.Value.AsFloat(); math.Abs(got-want) > 0.01 {
			t.Errorf("Projections[%d].Value = %f, want %f", i, got, want)
		}
	}
}

func TestPerformance_ZeroStartYieldsZeroReturn(t *testing.T) {
	b := newTestBook(t)
	savings := addAccount(t, b, "Savings", Debit, COP, 0, 0, "", "")

	on := NewDate(2025, time.June, 15)
	adjustAt(t, b, savings.ID, 500_000, at(2025, time.June, 14, 12))

	report := Performance(b.Accounts(), b.Ledger(), Scope{}, LastMonth, on, b.Settings.Rates(), COP)

	wantMoney(t, "CurrentVal", report.CurrentVal, 500_000)
	wantMoney(t, "StartVal", report.StartVal, 0)
	wantPercent(t, "NormalReturn", report.NormalReturn, 0)
	wantPercent(t, "AnnualizedReturn", report.AnnualizedReturn, 0)
	for _, p := range report.Projections {
		wantMoney(t, "flat projection", p.Value, 500_000)
	}
}

func TestPerformance_CreditLowersReturn(t *testing.T) {
	b := newTestBook(t)
	addAccount(t, b, "Savings", Debit, COP, 1_000_000, 0, "", "")
	visa := addAccount(t, b, "Visa", Credit, COP, 0, 900_000, "", "")

	on := NewDate(2025, time.June, 15)
	adjustAt(t, b, visa.ID, 200_000, at(2025, time.June, 10, 12))

	report := Performance(b.Accounts(), b.Ledger(), Scope{}, LastMonth, on, b.Settings.Rates(), COP)

	wantMoney(t, "CurrentVal", report.CurrentVal, 800_000)
	wantMoney(t, "StartVal", report.StartVal, 1_000_000)
	wantPercent(t, "NormalReturn", report.NormalReturn, -20)
}

func TestPerformance_ScopedByTag(t *testing.T) {
	b := newTestBook(t)
	invest := addAccount(t, b, "Broker", Debit, COP, 1_000_000, 0, "", "invest")
	daily := addAccount(t, b, "Checking", Debit, COP, 5_000_000, 0, "", "daily")

	on := NewDate(2025, time.June, 15)
	adjustAt(t, b, invest.ID, 100_000, at(2025, time.June, 10, 12))
	adjustAt(t, b, daily.ID, -3_000_000, at(2025, time.June, 11, 12))

	report := Performance(b.Accounts(), b.Ledger(), Scope{Tag: "invest"}, LastMonth, on, b.Settings.Rates(), COP)

	// the checking account and its big withdrawal are out of scope
	wantMoney(t, "CurrentVal", report.CurrentVal, 1_100_000)
	wantMoney(t, "StartVal", report.StartVal, 1_000_000)
	wantPercent(t, "NormalReturn", report.NormalReturn, 10)
}

func TestPerformance_TransactionsOutsideWindowIgnored(t *testing.T) {
	b := newTestBook(t)
	savings := addAccount(t, b, "Savings", Debit, COP, 0, 0, "", "")

	on := NewDate(2025, time.June, 15)
	adjustAt(t, b, savings.ID, 2_000_000, at(2025, time.March, 1, 12))

	report := Performance(b.Accounts(), b.Ledger(), Scope{}, LastMonth, on, b.Settings.Rates(), COP)

	wantMoney(t, "CurrentVal", report.CurrentVal, 2_000_000)
	wantMoney(t, "StartVal", report.StartVal, 2_000_000)
	wantPercent(t, "NormalReturn", report.NormalReturn, 0)
}

func TestPerformance_SinceStartAnnualizesOverElapsedYears(t *testing.T) {
	b := newTestBook(t)
	savings := addAccount(t, b, "Savings", Debit, COP, 1_000_000, 0, "", "")

	// two years between the first transaction and the report day
	first := at(2023, time.June, 15, 12)
	adjustAt(t, b, savings.ID, 0, first)
	adjustAt(t, b, savings.ID, 440_000, at(2024, time.June, 1, 12))
	on := NewDate(2025, time.June, 15)

	report := Performance(b.Accounts(), b.Ledger(), Scope{}, SinceStart, on, b.Settings.Rates(), COP)

	wantMoney(t, "CurrentVal", report.CurrentVal, 1_440_000)
	wantMoney(t, "StartVal", report.StartVal, 1_000_000)
	wantPercent(t, "NormalReturn", report.NormalReturn, 44)

	years := float64(DateOf(first).DaysUntil(on)) / 365.25
	want := PercentOfRatio(math.Pow(1.44, 1/years) - 1)
	wantPercent(t, "AnnualizedReturn", report.AnnualizedReturn, want)
}

func TestPerformance_EmptyBook(t *testing.T) {
	b := newTestBook(t)
	report := Performance(b.Accounts(), b.Ledger(), Scope{}, SinceStart, NewDate(2025, time.June, 15), b.Settings.Rates(), COP)
	wantMoney(t, "CurrentVal", report.CurrentVal, 0)
	wantMoney(t, "StartVal", report.StartVal, 0)
	wantPercent(t, "NormalReturn", report.NormalReturn, 0)
}
