package renderer

import (
	"github.com/its-camilo/smartfi"
)

// Accounts is the view of the account listing: one section per group,
// preceded by a section for the ungrouped accounts when any exist.
type Accounts struct {
	Sections []AccountSection
}

type AccountSection struct {
	Name string
	Rows []AccountRow
}

type AccountRow struct {
	Name        string
	Type        string
	Currency    string
	Balance     string
	CreditLimit string
	Tag         string
}

// NewAccounts builds the listing view from the book, keeping the book's
// display order.
func NewAccounts(b *smartfi.Book) *Accounts {
	row := func(a smartfi.Account) AccountRow {
		r := AccountRow{
			Name:     a.Name,
			Type:     string(a.Type),
			Currency: string(a.Currency),
			Balance:  a.Balance.String(),
			Tag:      a.Tag,
		}
		if a.IsCredit() {
			r.CreditLimit = a.CreditLimit.String()
		}
		return r
	}

	groups := b.Groups()
	sections := make([]AccountSection, len(groups))
	index := make(map[string]int, len(groups))
	for i, g := range groups {
		sections[i] = AccountSection{Name: g.Name}
		index[g.ID] = i
	}

	var ungrouped AccountSection
	for _, a := range b.Accounts() {
		if a.GroupID == "" {
			ungrouped.Rows = append(ungrouped.Rows, row(a))
			continue
		}
		if i, ok := index[a.GroupID]; ok {
			sections[i].Rows = append(sections[i].Rows, row(a))
		}
	}

	out := &Accounts{Sections: sections}
	if len(ungrouped.Rows) > 0 {
		ungrouped.Name = "Ungrouped"
		out.Sections = append([]AccountSection{ungrouped}, sections...)
	}
	return out
}
