package renderer

import (
	"io/fs"
	"strings"
	"testing"
	"text/template"
	"time"

	"github.com/its-camilo/smartfi"
)

// TestTemplatesParse catches malformed template files early: every
// embedded .md file must parse as a text template.
func TestTemplatesParse(t *testing.T) {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		t.Fatalf("failed to read embedded templates: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no templates embedded")
	}
	for _, e := range entries {
		content, err := fs.ReadFile(templates, "templates/"+e.Name())
		if err != nil {
			t.Fatalf("failed to read %s: %v", e.Name(), err)
		}
		if _, err := template.New(e.Name()).Parse(string(content)); err != nil {
			t.Errorf("template %s does not parse: %v", e.Name(), err)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	s := &Summary{
		Date:             "2025-06-15",
		Currency:         "COP",
		TotalAssets:      "1,200,000",
		TotalLiabilities: "200,000",
		NetWorth:         "1,000,000",
		Liquidity:        "1,200,000",
		CreditLimitTotal: "900,000",
		BuyingPower:      "1,900,000",
	}

	got := RenderSummary(s)
	want := `# Summary on 2025-06-15

| Metric | Value (COP) |
| :--- | ---: |
| Total assets | 1,200,000 |
| Total liabilities | 200,000 |
| Net worth | 1,000,000 |
| Liquidity | 1,200,000 |
| Credit limit | 900,000 |
| Buying power | 1,900,000 |
`
	if got != want {
		t.Errorf("RenderSummary() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderHistory(t *testing.T) {
	h := &History{
		Currency: "COP",
		Entries: []HistoryEntry{
			{Date: "2025-01-01", NetWorth: "0", Liquidity: "0", BuyingPower: "500,000"},
			{Date: "2025-01-02", NetWorth: "800,000", Liquidity: "1,000,000", BuyingPower: "1,300,000"},
		},
	}

	got := RenderHistory(h)
	want := `# Net worth history (COP)

| Date | Net worth | Liquidity | Buying power |
| :--- | ---: | ---: | ---: |
| 2025-01-01 | 0 | 0 | 500,000 |
| 2025-01-02 | 800,000 | 1,000,000 | 1,300,000 |
`
	if got != want {
		t.Errorf("RenderHistory() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderReturns(t *testing.T) {
	r := &Returns{
		Scope:            "all accounts",
		Window:           "last month",
		Currency:         "COP",
		CurrentVal:       "1,500,000",
		StartVal:         "1,000,000",
		NormalReturn:     "+50.00%",
		AnnualizedReturn: "+50.00%",
		Projections: []ProjectionRow{
			{Months: 3, Value: "1,657,978"},
			{Months: 6, Value: "1,837,117"},
			{Months: 12, Value: "2,250,000"},
		},
	}

	got := RenderReturns(r)
	want := `# Performance of all accounts over the last month

| Metric | Value (COP) |
| :--- | ---: |
| Current valuation | 1,500,000 |
| Starting valuation | 1,000,000 |
| Return | +50.00% |
| Annual equivalent | +50.00% |

## Projections

| Horizon | Projected valuation |
| :--- | ---: |
| 3 months | 1,657,978 |
| 6 months | 1,837,117 |
| 12 months | 2,250,000 |
`
	if got != want {
		t.Errorf("RenderReturns() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderAccounts(t *testing.T) {
	a := &Accounts{
		Sections: []AccountSection{
			{Name: "Ungrouped", Rows: []AccountRow{
				{Name: "Pocket", Type: "debit", Currency: "COP", Balance: "50,000"},
			}},
			{Name: "Cards", Rows: []AccountRow{
				{Name: "Visa", Type: "credit", Currency: "COP", Balance: "200,000", CreditLimit: "900,000", Tag: "daily"},
			}},
		},
	}

	got := RenderAccounts(a)
	want := `# Accounts

## Ungrouped

| Account | Type | Currency | Balance | Credit limit | Tag |
| :--- | :--- | :--- | ---: | ---: | :--- |
| Pocket | debit | COP | 50,000 |  |  |

## Cards

| Account | Type | Currency | Balance | Credit limit | Tag |
| :--- | :--- | :--- | ---: | ---: | :--- |
| Visa | credit | COP | 200,000 | 900,000 | daily |
`
	if got != want {
		t.Errorf("RenderAccounts() =\n%q\nwant\n%q", got, want)
	}
}

func TestNewHistory(t *testing.T) {
	b := smartfi.NewBook()
	points := smartfi.History(nil, b.Ledger(), smartfi.NewRates(4000),
		smartfi.NewDate(2025, time.January, 1), smartfi.NewDate(2025, time.January, 3), smartfi.COP)

	h := NewHistory(points, smartfi.COP)
	if len(h.Entries) != 3 {
		t.Fatalf("NewHistory() built %d entries, want 3", len(h.Entries))
	}
	if h.Entries[0].Date != "2025-01-01" {
		t.Errorf("first entry date = %q", h.Entries[0].Date)
	}
	if h.Currency != "COP" {
		t.Errorf("currency = %q", h.Currency)
	}
}

func TestNewReturns(t *testing.T) {
	b := smartfi.NewBook()
	report := smartfi.Performance(nil, b.Ledger(), smartfi.Scope{Tag: "invest"}, smartfi.LastMonth,
		smartfi.NewDate(2025, time.June, 15), smartfi.NewRates(4000), smartfi.COP)

	r := NewReturns(report)
	if r.Scope != "tag invest" {
		t.Errorf("scope = %q", r.Scope)
	}
	if r.Window != "last month" {
		t.Errorf("window = %q", r.Window)
	}
	if len(r.Projections) != 3 {
		t.Errorf("built %d projections, want 3", len(r.Projections))
	}
}

func TestNewAccounts(t *testing.T) {
	b := smartfi.NewBook()
	g := b.AddGroup("Banks")
	if _, err := b.AddAccount("Savings", smartfi.Debit, smartfi.COP, smartfi.M(0, smartfi.COP), smartfi.M(0, smartfi.COP), g.ID, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddAccount("Pocket", smartfi.Debit, smartfi.COP, smartfi.M(0, smartfi.COP), smartfi.M(0, smartfi.COP), "", ""); err != nil {
		t.Fatal(err)
	}

	a := NewAccounts(b)
	if len(a.Sections) != 2 {
		t.Fatalf("built %d sections, want 2", len(a.Sections))
	}
	if a.Sections[0].Name != "Ungrouped" || a.Sections[1].Name != "Banks" {
		t.Errorf("section order = %q, %q", a.Sections[0].Name, a.Sections[1].Name)
	}

	rendered := RenderAccounts(a)
	for _, name := range []string{"Savings", "Pocket", "Banks"} {
		if !strings.Contains(rendered, name) {
			t.Errorf("rendered listing misses %q", name)
		}
	}
}
