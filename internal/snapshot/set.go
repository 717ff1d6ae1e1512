// Package snapshot provides lookup and file loading for caller-supplied
// account balance snapshots.
package snapshot

import "github.com/payflow-dev/payflow/internal/model"

// Set is an order-preserving lookup over a balance snapshot. The
// original slice order matters: result account lists must come back in
// the order the snapshot supplied them.
type Set struct {
	accounts []model.Account
	byID     map[string]model.Account
}

// NewSet builds a Set from a snapshot slice. When IDs repeat, the last
// entry wins, matching a front-to-back scan of the snapshot.
func NewSet(accounts []model.Account) *Set {
	byID := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Set{accounts: accounts, byID: byID}
}

// All returns the snapshot in its original order.
func (s *Set) All() []model.Account {
	return s.accounts
}

// Get returns the account with the given ID, matched exactly.
func (s *Set) Get(id string) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID is present.
func (s *Set) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Filter returns the accounts whose ID is in ids, preserving the
// snapshot's original order.
func (s *Set) Filter(ids ...string) []model.Account {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var result []model.Account
	for _, a := range s.accounts {
		if want[a.ID] {
			result = append(result, a)
		}
	}
	return result
}
