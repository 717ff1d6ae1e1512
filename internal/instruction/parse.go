// Package instruction parses free-text payment instructions.
//
// The grammar is positional rather than pattern-based: every field is
// sliced between keyword occurrence indices, so keyword-like text
// inside an amount or account ID can never be mis-captured. Keyword
// search runs on an upper-cased working copy while field extraction
// slices the original-case text, preserving account ID casing.
//
// Two grammars are supported:
//
//	DEBIT <amount> <currency> FROM ACCOUNT <id> FOR CREDIT TO ACCOUNT <id> [ON <date>]
//	CREDIT <amount> <currency> TO ACCOUNT <id> FROM ACCOUNT <id> [ON <date>]
package instruction

import (
	"strings"

	"github.com/payflow-dev/payflow/internal/messages"
	"github.com/payflow-dev/payflow/internal/model"
)

// SyntaxError reports an instruction that does not satisfy the grammar.
type SyntaxError struct {
	Reason messages.Key // MissingKeyword, InvalidOrder or Malformed
}

func (e *SyntaxError) Error() string {
	return "instruction syntax: " + string(e.Reason)
}

// Keyword markers. Leading and trailing spaces are part of the marker
// so a marker can never match inside another token.
const (
	kwFrom    = " FROM "
	kwTo      = " TO "
	kwFor     = " FOR "
	kwOn      = " ON "
	kwAccount = " ACCOUNT "
	kwCredit  = " CREDIT"
)

// Parse turns an instruction string into a ParsedInstruction, or a
// *SyntaxError when the grammar is not satisfied.
func Parse(text string) (model.ParsedInstruction, error) {
	normalized := normalizeWhitespace(text)
	upper := strings.ToUpper(normalized)

	switch {
	case strings.HasPrefix(upper, "DEBIT"):
		return parseDebit(normalized, upper)
	case strings.HasPrefix(upper, "CREDIT"):
		return parseCredit(normalized, upper)
	default:
		return model.ParsedInstruction{}, &SyntaxError{Reason: messages.MissingKeyword}
	}
}

// parseDebit handles DEBIT ... FROM ACCOUNT ... FOR CREDIT TO ACCOUNT ...
func parseDebit(normalized, upper string) (model.ParsedInstruction, error) {
	parsed := model.ParsedInstruction{Kind: model.KindDebit}

	fromPos := strings.Index(upper, kwFrom)
	forPos := strings.Index(upper, kwFor)
	toPos := strings.Index(upper, kwTo)
	onPos := strings.Index(upper, kwOn)

	if fromPos == -1 || forPos == -1 || toPos == -1 {
		return parsed, &SyntaxError{Reason: messages.MissingKeyword}
	}
	if !(fromPos < forPos && forPos < toPos) {
		return parsed, &SyntaxError{Reason: messages.InvalidOrder}
	}

	// FROM must introduce an account: "FROM ACCOUNT" before FOR.
	fromAccountPos := indexFrom(upper, kwAccount, fromPos)
	if fromAccountPos == -1 || fromAccountPos > forPos {
		return parsed, &SyntaxError{Reason: messages.InvalidOrder}
	}

	// FOR must be followed by the CREDIT keyword before TO.
	creditPos := indexFrom(upper, kwCredit, forPos)
	if creditPos == -1 || creditPos > toPos {
		return parsed, &SyntaxError{Reason: messages.MissingKeyword}
	}

	// TO must introduce the second account.
	toAccountPos := indexFrom(upper, kwAccount, toPos)
	if toAccountPos == -1 {
		return parsed, &SyntaxError{Reason: messages.InvalidOrder}
	}

	amountText, currency, err := splitAmountCurrency(substr(normalized, len("DEBIT")+1, fromPos))
	if err != nil {
		return parsed, err
	}
	parsed.AmountText = amountText
	parsed.Currency = currency

	parsed.DebitAccount = strings.TrimSpace(substr(normalized, fromAccountPos+len(kwAccount), forPos))

	creditStart := toAccountPos + len(kwAccount)
	creditEnd := len(normalized)
	if onPos != -1 && onPos > toAccountPos {
		creditEnd = onPos
		parsed.ExecuteBy = strings.TrimSpace(normalized[onPos+len(kwOn):])
	}
	parsed.CreditAccount = strings.TrimSpace(substr(normalized, creditStart, creditEnd))

	return parsed, nil
}

// parseCredit handles CREDIT ... TO ACCOUNT ... FROM ACCOUNT ...
func parseCredit(normalized, upper string) (model.ParsedInstruction, error) {
	parsed := model.ParsedInstruction{Kind: model.KindCredit}

	fromPos := strings.Index(upper, kwFrom)
	toPos := strings.Index(upper, kwTo)
	onPos := strings.Index(upper, kwOn)

	if toPos == -1 || fromPos == -1 {
		return parsed, &SyntaxError{Reason: messages.MissingKeyword}
	}
	if toPos >= fromPos {
		return parsed, &SyntaxError{Reason: messages.InvalidOrder}
	}

	// TO must introduce an account: "TO ACCOUNT" before FROM.
	toAccountPos := indexFrom(upper, kwAccount, toPos)
	if toAccountPos == -1 || toAccountPos > fromPos {
		return parsed, &SyntaxError{Reason: messages.InvalidOrder}
	}

	// FROM must introduce the second account.
	fromAccountPos := indexFrom(upper, kwAccount, fromPos)
	if fromAccountPos == -1 {
		return parsed, &SyntaxError{Reason: messages.InvalidOrder}
	}

	amountText, currency, err := splitAmountCurrency(substr(normalized, len("CREDIT")+1, toPos))
	if err != nil {
		return parsed, err
	}
	parsed.AmountText = amountText
	parsed.Currency = currency

	parsed.CreditAccount = strings.TrimSpace(substr(normalized, toAccountPos+len(kwAccount), fromPos))

	debitStart := fromAccountPos + len(kwAccount)
	debitEnd := len(normalized)
	if onPos != -1 && onPos > fromAccountPos {
		debitEnd = onPos
		parsed.ExecuteBy = strings.TrimSpace(normalized[onPos+len(kwOn):])
	}
	parsed.DebitAccount = strings.TrimSpace(substr(normalized, debitStart, debitEnd))

	return parsed, nil
}

// splitAmountCurrency splits the field between the leading keyword and
// the first directional keyword into its amount and currency tokens.
func splitAmountCurrency(field string) (amountText, currency string, err error) {
	parts := strings.Split(strings.TrimSpace(field), " ")
	if len(parts) < 2 {
		return "", "", &SyntaxError{Reason: messages.Malformed}
	}
	return parts[0], strings.ToUpper(parts[1]), nil
}

// indexFrom returns the index of sub in s at or after start, or -1.
func indexFrom(s, sub string, start int) int {
	if start < 0 || start > len(s) {
		return -1
	}
	i := strings.Index(s[start:], sub)
	if i == -1 {
		return -1
	}
	return start + i
}

// substr slices s with clamped, order-insensitive bounds. Anchor
// positions can legally cross (e.g. a FROM marker inside the amount
// field), which must yield an empty-ish field, not a panic.
func substr(s string, start, end int) string {
	start = clamp(start, len(s))
	end = clamp(end, len(s))
	if start > end {
		start, end = end, start
	}
	return s[start:end]
}

func clamp(i, limit int) int {
	if i < 0 {
		return 0
	}
	if i > limit {
		return limit
	}
	return i
}

// normalizeWhitespace collapses runs of space, tab, newline and
// carriage return to a single space and trims the ends.
func normalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastWasSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			if !lastWasSpace {
				b.WriteByte(' ')
				lastWasSpace = true
			}
			continue
		}
		b.WriteByte(c)
		lastWasSpace = false
	}
	return strings.TrimSpace(b.String())
}
