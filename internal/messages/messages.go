package messages

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Key is a symbolic reason identifier. The evaluator reports keys;
// displayable strings come from a Catalog so deployments can reword
// them without touching evaluation logic.
type Key string

const (
	MissingKeyword      Key = "MISSING_KEYWORD"
	InvalidOrder        Key = "INVALID_ORDER"
	Malformed           Key = "MALFORMED"
	InvalidAmount       Key = "INVALID_AMOUNT"
	UnsupportedCurrency Key = "UNSUPPORTED_CURRENCY"
	InvalidAccountID    Key = "INVALID_ACCOUNT_ID"
	SameAccount         Key = "SAME_ACCOUNT"
	AccountNotFound     Key = "ACCOUNT_NOT_FOUND"
	CurrencyMismatch    Key = "CURRENCY_MISMATCH"
	InvalidDate         Key = "INVALID_DATE"
	InsufficientFunds   Key = "INSUFFICIENT_FUNDS"
	Pending             Key = "PENDING"
	Success             Key = "SUCCESS"
)

// Catalog resolves a symbolic key to a displayable reason string.
type Catalog interface {
	Reason(key Key) string
}

// Static is an in-memory Catalog.
type Static map[Key]string

// Reason returns the string for key, or the key itself when the
// catalog has no entry (a missing message should never hide the code).
func (s Static) Reason(key Key) string {
	if msg, ok := s[key]; ok {
		return msg
	}
	return string(key)
}

// Default returns the built-in message catalog.
func Default() Static {
	return Static{
		MissingKeyword:      "Instruction is missing a required keyword",
		InvalidOrder:        "Instruction keywords are out of order",
		Malformed:           "Instruction is malformed",
		InvalidAmount:       "Amount must be a positive whole number",
		UnsupportedCurrency: "Currency is not supported",
		InvalidAccountID:    "Account ID contains invalid characters",
		SameAccount:         "Debit and credit accounts must be different",
		AccountNotFound:     "Account not found",
		CurrencyMismatch:    "Debit and credit accounts use different currencies",
		InvalidDate:         "Execution date is not a valid YYYY-MM-DD date",
		InsufficientFunds:   "Insufficient funds in debit account",
		Pending:             "Transaction scheduled for future execution",
		Success:             "Transaction executed successfully",
	}
}

// Load reads a YAML message override file and returns the default
// catalog with the file's entries applied on top. Keys the file does
// not mention keep their built-in text.
func Load(path string) (Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading message catalog: %w", err)
	}

	var overrides map[Key]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing message catalog: %w", err)
	}

	catalog := Default()
	for key, msg := range overrides {
		catalog[key] = msg
	}
	return catalog, nil
}
