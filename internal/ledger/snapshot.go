package ledger

import (
	"strings"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/table"
)

// Snapshot is the fully-parsed, read-only ledger the auditors work from.
// Income, Details and Transactions are nil when the corresponding table
// was not supplied.
type Snapshot struct {
	Accounts     []model.Account
	Changes      []model.AccountChange
	Income       []model.IncomeItem
	Details      []model.DetailRecord
	Transactions []model.Transaction

	byAccount map[string]int
	byChange  map[string]int
}

// Build parses the two required tables into a Snapshot. Optional tables
// (income statement, details, transactions) are parsed separately by the
// caller so a bad optional table can skip just its own audit dimension.
func Build(bs, changes *table.Table, m config.Mappings) (*Snapshot, error) {
	s := &Snapshot{}

	var err error
	if s.Accounts, err = ParseBalanceSheet(bs, m.BalanceSheet); err != nil {
		return nil, err
	}
	if s.Changes, err = ParseAccountChanges(changes, m.AccountChanges); err != nil {
		return nil, err
	}

	s.index()
	return s, nil
}

// New builds a Snapshot from already-parsed entities. Used by callers that
// construct ledger data directly rather than from tables.
func New(accounts []model.Account, changes []model.AccountChange) *Snapshot {
	s := &Snapshot{Accounts: accounts, Changes: changes}
	s.index()
	return s
}

func (s *Snapshot) index() {
	s.byAccount = make(map[string]int, len(s.Accounts))
	for i, a := range s.Accounts {
		s.byAccount[a.Name] = i
	}
	s.byChange = make(map[string]int, len(s.Changes))
	for i, c := range s.Changes {
		s.byChange[c.Account] = i
	}
}

// Account returns the account with the given name.
func (s *Snapshot) Account(name string) (model.Account, bool) {
	i, ok := s.byAccount[name]
	if !ok {
		return model.Account{}, false
	}
	return s.Accounts[i], true
}

// Change returns the change record for the given account name.
func (s *Snapshot) Change(name string) (model.AccountChange, bool) {
	i, ok := s.byChange[name]
	if !ok {
		return model.AccountChange{}, false
	}
	return s.Changes[i], true
}

// FindAccountByKeywords returns the first account (in input order) whose
// name contains any of the given keywords, matched case-insensitively.
func (s *Snapshot) FindAccountByKeywords(keywords []string) (model.Account, bool) {
	for _, a := range s.Accounts {
		lower := strings.ToLower(a.Name)
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return a, true
			}
		}
	}
	return model.Account{}, false
}
