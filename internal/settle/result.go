package settle

import (
	"strings"

	"github.com/payflow-dev/payflow/internal/messages"
	"github.com/payflow-dev/payflow/internal/model"
	"github.com/payflow-dev/payflow/internal/snapshot"
)

// accountScope selects which slice of the snapshot a result reports.
type accountScope int

const (
	// scopeNone: syntax failures, nothing was resolved.
	scopeNone accountScope = iota
	// scopeAll: the full snapshot, unmodified, in original order.
	scopeAll
	// scopeParties: only the two instruction parties, in original order.
	scopeParties
)

// builder assembles the settlement result envelope so every exit path
// shapes it identically.
type builder struct {
	catalog  messages.Catalog
	accounts []model.Account
	parsed   model.ParsedInstruction
	amount   *int64 // set once the amount text parses
}

func newBuilder(catalog messages.Catalog, accounts []model.Account, parsed model.ParsedInstruction) *builder {
	return &builder{
		catalog:  catalog,
		accounts: accounts,
		parsed:   parsed,
	}
}

// syntaxResult is the single SY03 shape: no parsed detail, empty
// account list.
func syntaxResult(catalog messages.Catalog, reason messages.Key) model.SettlementResult {
	return model.SettlementResult{
		Status:       model.StatusFailed,
		StatusReason: catalog.Reason(reason),
		StatusCode:   model.CodeSyntaxError,
		Accounts:     []model.AccountView{},
	}
}

// failed builds a terminal failure echoing whatever the parser
// recovered, with the account view selected by scope.
func (b *builder) failed(code string, reason messages.Key, scope accountScope) model.SettlementResult {
	return b.envelope(model.StatusFailed, code, reason, b.views(scope))
}

// settled builds the success-path result. For a pending settlement the
// balances are echoed unchanged; for an immediate one the debit
// account decreases and the credit account increases by the amount.
func (b *builder) settled(pending bool) model.SettlementResult {
	views := b.views(scopeParties)
	if !pending {
		for i := range views {
			switch views[i].ID {
			case b.parsed.DebitAccount:
				views[i].Balance -= *b.amount
			case b.parsed.CreditAccount:
				views[i].Balance += *b.amount
			}
		}
	}

	if pending {
		return b.envelope(model.StatusPending, model.CodePending, messages.Pending, views)
	}
	return b.envelope(model.StatusSuccessful, model.CodeSuccess, messages.Success, views)
}

func (b *builder) envelope(status model.Status, code string, reason messages.Key, views []model.AccountView) model.SettlementResult {
	kind := string(b.parsed.Kind)
	currency := b.parsed.Currency

	res := model.SettlementResult{
		Type:          &kind,
		Amount:        b.amount,
		Currency:      &currency,
		DebitAccount:  &b.parsed.DebitAccount,
		CreditAccount: &b.parsed.CreditAccount,
		Status:        status,
		StatusReason:  b.catalog.Reason(reason),
		StatusCode:    code,
		Accounts:      views,
	}
	if b.parsed.ExecuteBy != "" {
		res.ExecuteBy = &b.parsed.ExecuteBy
	}
	return res
}

// views renders the selected snapshot slice with balance ==
// balanceBefore and upper-cased currencies.
func (b *builder) views(scope accountScope) []model.AccountView {
	var selected []model.Account
	switch scope {
	case scopeNone:
		return []model.AccountView{}
	case scopeAll:
		selected = b.accounts
	case scopeParties:
		selected = snapshot.NewSet(b.accounts).Filter(b.parsed.DebitAccount, b.parsed.CreditAccount)
	}

	views := make([]model.AccountView, 0, len(selected))
	for _, a := range selected {
		views = append(views, model.AccountView{
			ID:            a.ID,
			Balance:       a.Balance,
			BalanceBefore: a.Balance,
			Currency:      strings.ToUpper(a.Currency),
		})
	}
	return views
}
