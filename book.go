package smartfi

import (
	"fmt"
	"iter"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Settings holds the single mutable exchange rate and the project
// start date used as the default lower bound of history charts.
type Settings struct {
	USDCOP       decimal.Decimal `json:"usdcop"`
	ProjectStart Date            `json:"projectStart"`
}

// Rates returns the conversion state derived from the settings.
func (s Settings) Rates() Rates { return Rates{USDCOP: s.USDCOP} }

// Book is the user's complete data set: accounts, groups, settings and
// the transaction ledger. It is the single writer of all of them; the
// computation engine only ever reads.
type Book struct {
	Settings Settings
	accounts []Account
	groups   []Group
	ledger   *Ledger
}

// NewBook creates an empty book starting today.
func NewBook() *Book {
	return &Book{
		Settings: Settings{ProjectStart: Today()},
		ledger:   NewLedger(),
	}
}

// Ledger returns the book's transaction ledger.
func (b *Book) Ledger() *Ledger { return b.ledger }

// Account returns the account with the given id.
func (b *Book) Account(id string) (Account, bool) {
	for _, a := range b.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// AccountByName returns the first account with the given name. Names
// are the human handle on the CLI; ids only appear in the data files.
func (b *Book) AccountByName(name string) (Account, bool) {
	for _, a := range b.accounts {
		if a.Name == name {
			return a, true
		}
	}
	return Account{}, false
}

// Accounts returns all accounts sorted by group order first and manual
// sort order within each sibling scope. Ungrouped accounts come first.
func (b *Book) Accounts() []Account {
	groupOrder := make(map[string]int, len(b.groups))
	for _, g := range b.groups {
		groupOrder[g.ID] = g.SortOrder
	}
	sorted := make([]Account, len(b.accounts))
	copy(sorted, b.accounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		gi, gj := sorted[i].GroupID, sorted[j].GroupID
		if gi != gj {
			if gi == "" || gj == "" {
				return gi == "" // ungrouped first
			}
			return groupOrder[gi] < groupOrder[gj]
		}
		return sorted[i].SortOrder < sorted[j].SortOrder
	})
	return sorted
}

// Groups returns all groups in manual sort order.
func (b *Book) Groups() []Group {
	sorted := make([]Group, len(b.groups))
	copy(sorted, b.groups)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SortOrder < sorted[j].SortOrder })
	return sorted
}

// Group returns the group with the given id.
func (b *Book) Group(id string) (Group, bool) {
	for _, g := range b.groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// GroupByName returns the first group with the given name.
func (b *Book) GroupByName(name string) (Group, bool) {
	for _, g := range b.groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// AddAccount creates an account with the given attributes and places it
// last in its sibling scope. The created account is returned.
func (b *Book) AddAccount(name string, typ AccountType, currency Currency, balance, creditLimit Money, groupID, tag string) (Account, error) {
	if groupID != "" {
		if _, ok := b.Group(groupID); !ok {
			return Account{}, fmt.Errorf("unknown group %q", groupID)
		}
	}
	account := Account{
		ID:             newID(),
		GroupID:        groupID,
		Name:           name,
		Type:           typ,
		Currency:       currency,
		Balance:        M(balance.Amount(), currency),
		InitialBalance: M(balance.Amount(), currency),
		CreatedAt:      time.Now(),
		Tag:            tag,
		SortOrder:      b.nextAccountOrder(groupID),
	}
	if typ == Credit {
		account.CreditLimit = M(creditLimit.Amount(), currency)
	}
	if err := account.Validate(); err != nil {
		return Account{}, err
	}
	b.accounts = append(b.accounts, account)
	return account, nil
}

// UpdateAccount replaces the stored account with the same id.
func (b *Book) UpdateAccount(account Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	for i, a := range b.accounts {
		if a.ID == account.ID {
			b.accounts[i] = account
			return nil
		}
	}
	return fmt.Errorf("unknown account %q", account.ID)
}

// DeleteAccount removes the account and, as a cascade, every
// transaction it owns.
func (b *Book) DeleteAccount(id string) error {
	for i, a := range b.accounts {
		if a.ID == id {
			b.accounts = append(b.accounts[:i], b.accounts[i+1:]...)
			b.ledger.removeAccount(id)
			return nil
		}
	}
	return fmt.Errorf("unknown account %q", id)
}

// AddGroup creates a group placed last in the group ordering.
func (b *Book) AddGroup(name string) Group {
	order := 0
	for _, g := range b.groups {
		if g.SortOrder >= order {
			order = g.SortOrder + 1
		}
	}
	group := Group{ID: newID(), Name: name, SortOrder: order}
	b.groups = append(b.groups, group)
	return group
}

// RenameGroup changes the display name of a group.
func (b *Book) RenameGroup(id, name string) error {
	for i, g := range b.groups {
		if g.ID == id {
			b.groups[i].Name = name
			return nil
		}
	}
	return fmt.Errorf("unknown group %q", id)
}

// DeleteGroup removes the group and detaches its member accounts:
// they survive, ungrouped and with their balances untouched.
func (b *Book) DeleteGroup(id string) error {
	for i, g := range b.groups {
		if g.ID == id {
			b.groups = append(b.groups[:i], b.groups[i+1:]...)
			for j := range b.accounts {
				if b.accounts[j].GroupID == id {
					b.accounts[j].GroupID = ""
					b.accounts[j].SortOrder = b.nextAccountOrder("")
				}
			}
			return nil
		}
	}
	return fmt.Errorf("unknown group %q", id)
}

// SwapOrder swaps the manual positions of two accounts. They must be
// siblings (same group or both ungrouped): only the pair's relative
// order inverts, the rest of the set is untouched.
func (b *Book) SwapOrder(idA, idB string) error {
	var ia, ib = -1, -1
	for i, a := range b.accounts {
		switch a.ID {
		case idA:
			ia = i
		case idB:
			ib = i
		}
	}
	if ia < 0 {
		return fmt.Errorf("unknown account %q", idA)
	}
	if ib < 0 {
		return fmt.Errorf("unknown account %q", idB)
	}
	if b.accounts[ia].GroupID != b.accounts[ib].GroupID {
		return fmt.Errorf("accounts %q and %q are not in the same group", b.accounts[ia].Name, b.accounts[ib].Name)
	}
	b.accounts[ia].SortOrder, b.accounts[ib].SortOrder = b.accounts[ib].SortOrder, b.accounts[ia].SortOrder
	return nil
}

// SwapGroupOrder swaps the manual positions of two groups.
func (b *Book) SwapGroupOrder(idA, idB string) error {
	var ia, ib = -1, -1
	for i, g := range b.groups {
		switch g.ID {
		case idA:
			ia = i
		case idB:
			ib = i
		}
	}
	if ia < 0 {
		return fmt.Errorf("unknown group %q", idA)
	}
	if ib < 0 {
		return fmt.Errorf("unknown group %q", idB)
	}
	b.groups[ia].SortOrder, b.groups[ib].SortOrder = b.groups[ib].SortOrder, b.groups[ia].SortOrder
	return nil
}

// Adjust records a balance change: it appends a transaction carrying
// the resulting balance and the rate in effect, and updates the account
// balance, as one unit. The account balance is never visible
// inconsistent with its latest transaction.
func (b *Book) Adjust(accountID string, amount Money, at time.Time) (Transaction, error) {
	account, ok := b.Account(accountID)
	if !ok {
		return Transaction{}, fmt.Errorf("unknown account %q", accountID)
	}
	if amount.Currency() != "" && amount.Currency() != account.Currency {
		return Transaction{}, fmt.Errorf("amount is in %s but account %q is in %s", amount.Currency(), account.Name, account.Currency)
	}
	newBalance := account.Balance.Add(M(amount.Amount(), account.Currency))
	if account.IsCredit() && newBalance.IsNegative() {
		return Transaction{}, fmt.Errorf("adjustment would leave credit account %q owing %s", account.Name, newBalance)
	}
	if at.IsZero() {
		at = time.Now()
	}

	tx := Transaction{
		ID:        newID(),
		AccountID: account.ID,
		Amount:    M(amount.Amount(), account.Currency),
		Balance:   newBalance,
		Time:      at,
		Rate:      b.Settings.USDCOP,
	}
	if err := tx.Validate(account.Balance); err != nil {
		return Transaction{}, err
	}

	account.Balance = newBalance
	if err := b.UpdateAccount(account); err != nil {
		return Transaction{}, err
	}
	b.ledger.Append(tx)
	return tx, nil
}

// Valuation computes the present aggregate metrics of the whole book.
func (b *Book) Valuation(target Currency) Valuation {
	return NewValuation(b.accounts, b.Settings.Rates(), target)
}

// History reconstructs the valuation series from the project start (or
// 'from' when given) to today.
func (b *Book) History(from Date, target Currency) []HistoryPoint {
	if from.IsZero() {
		from = b.Settings.ProjectStart
	}
	return History(b.accounts, b.ledger, b.Settings.Rates(), from, Today(), target)
}

// Performance computes the performance report for a scope and window
// ending today.
func (b *Book) Performance(scope Scope, window Window, target Currency) Report {
	return Performance(b.accounts, b.ledger, scope, window, Today(), b.Settings.Rates(), target)
}

// AllTags iterates over the distinct account tags, in first-seen order.
func (b *Book) AllTags() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, a := range b.accounts {
			if a.Tag == "" {
				continue
			}
			if _, ok := seen[a.Tag]; ok {
				continue
			}
			seen[a.Tag] = struct{}{}
			if !yield(a.Tag) {
				return
			}
		}
	}
}

// nextAccountOrder returns the next free manual position within a
// sibling scope (a group, or the ungrouped set).
func (b *Book) nextAccountOrder(groupID string) int {
	order := 0
	for _, a := range b.accounts {
		if a.GroupID == groupID && a.SortOrder >= order {
			order = a.SortOrder + 1
		}
	}
	return order
}
