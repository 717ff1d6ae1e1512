package settle

import (
	"strconv"

	"github.com/payflow-dev/payflow/internal/id"
	"github.com/payflow-dev/payflow/internal/messages"
	"github.com/payflow-dev/payflow/internal/model"
)

// supportedCurrencies is the closed set an instruction's currency must
// belong to. Account-to-account currency agreement is checked
// separately in the settlement step.
var supportedCurrencies = map[string]bool{
	"NGN": true,
	"USD": true,
	"GBP": true,
	"GHS": true,
}

// validate runs the instruction-level checks, which depend only on the
// parsed record, never on the snapshot. On failure it returns the
// terminal result and ok=false. Failures echo the full unfiltered
// account list: nothing has been resolved yet, so the caller sees
// system state without any implied change.
func (e *Evaluator) validate(b *builder) (model.SettlementResult, bool) {
	// Amount must be an unsigned integer string: no sign, no decimal
	// point, no separators.
	if !digitsOnly(b.parsed.AmountText) {
		return b.failed(model.CodeInvalidAmount, messages.InvalidAmount, scopeAll), false
	}

	amount, err := strconv.ParseInt(b.parsed.AmountText, 10, 64)
	if err != nil {
		// All-digit but unrepresentable (overflow).
		return b.failed(model.CodeInvalidAmount, messages.InvalidAmount, scopeAll), false
	}
	b.amount = &amount

	if amount <= 0 {
		return b.failed(model.CodeInvalidAmount, messages.InvalidAmount, scopeAll), false
	}

	if !supportedCurrencies[b.parsed.Currency] {
		return b.failed(model.CodeUnsupportedCurrency, messages.UnsupportedCurrency, scopeAll), false
	}

	if !id.ValidAccountID(b.parsed.DebitAccount) {
		return b.failed(model.CodeInvalidAccountID, messages.InvalidAccountID, scopeAll), false
	}
	if !id.ValidAccountID(b.parsed.CreditAccount) {
		return b.failed(model.CodeInvalidAccountID, messages.InvalidAccountID, scopeAll), false
	}

	if b.parsed.DebitAccount == b.parsed.CreditAccount {
		return b.failed(model.CodeSameAccount, messages.SameAccount, scopeAll), false
	}

	return model.SettlementResult{}, true
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
