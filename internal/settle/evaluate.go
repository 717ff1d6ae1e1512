package settle

import (
	"strconv"
	"strings"
	"time"

	"github.com/payflow-dev/payflow/internal/messages"
	"github.com/payflow-dev/payflow/internal/model"
	"github.com/payflow-dev/payflow/internal/snapshot"
)

// settle runs the snapshot-level checks and decides immediate vs
// deferred execution. From the currency-match check onward, failure
// results narrow to the two instruction parties; the not-found check
// still reports the full snapshot because resolution has not
// completed yet.
func (e *Evaluator) settle(b *builder) model.SettlementResult {
	set := snapshot.NewSet(b.accounts)

	debitAcct, debitOK := set.Get(b.parsed.DebitAccount)
	creditAcct, creditOK := set.Get(b.parsed.CreditAccount)
	if !debitOK || !creditOK {
		return b.failed(model.CodeAccountNotFound, messages.AccountNotFound, scopeAll)
	}

	// Account-to-account agreement, independent of the instruction's
	// own currency field.
	if !strings.EqualFold(debitAcct.Currency, creditAcct.Currency) {
		return b.failed(model.CodeCurrencyMismatch, messages.CurrencyMismatch, scopeParties)
	}

	if b.parsed.ExecuteBy != "" && !validDate(b.parsed.ExecuteBy) {
		return b.failed(model.CodeInvalidDate, messages.InvalidDate, scopeParties)
	}

	// Funds are checked against the current balance even when execution
	// is deferred: a future-dated instruction that cannot settle today
	// fails now rather than at its execution date.
	if debitAcct.Balance < *b.amount {
		return b.failed(model.CodeInsufficientFunds, messages.InsufficientFunds, scopeParties)
	}

	pending := b.parsed.ExecuteBy != "" && afterToday(b.parsed.ExecuteBy, e.now())
	return b.settled(pending)
}

// validDate checks the YYYY-MM-DD shape: separators at fixed offsets,
// all-digit parts, year in [1000,9999], month in [1,12], day in
// [1,31]. Month lengths and leap years are deliberately not checked.
func validDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	if s[4] != '-' || s[7] != '-' {
		return false
	}

	year, ok := dateField(s[0:4])
	if !ok {
		return false
	}
	month, ok := dateField(s[5:7])
	if !ok {
		return false
	}
	day, ok := dateField(s[8:10])
	if !ok {
		return false
	}

	if year < 1000 || year > 9999 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	return true
}

func dateField(s string) (int, bool) {
	if !digitsOnly(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// afterToday reports whether the already shape-checked date is
// strictly later than the clock's current UTC calendar day. Out-of-
// range day numbers (e.g. 2025-02-31) normalize forward, the same
// rollover the shape check permits.
func afterToday(executeBy string, now time.Time) bool {
	year, _ := dateField(executeBy[0:4])
	month, _ := dateField(executeBy[5:7])
	day, _ := dateField(executeBy[8:10])

	executeDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return executeDate.After(today)
}
