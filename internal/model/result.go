package model

// Status is the terminal state of a settlement evaluation.
type Status string

const (
	StatusFailed     Status = "failed"
	StatusPending    Status = "pending"
	StatusSuccessful Status = "successful"
)

// Status codes for every evaluation outcome.
const (
	CodeSuccess             = "AP00" // executed immediately
	CodePending             = "AP02" // scheduled for a future date
	CodeInsufficientFunds   = "AC01"
	CodeSameAccount         = "AC02"
	CodeAccountNotFound     = "AC03"
	CodeInvalidAccountID    = "AC04"
	CodeInvalidAmount       = "AM01"
	CodeCurrencyMismatch    = "CU01"
	CodeUnsupportedCurrency = "CU02"
	CodeInvalidDate         = "DT01"
	CodeSyntaxError         = "SY03"
)

// AccountView is an account entry in a settlement result. Balance only
// differs from BalanceBefore on a successful settlement, and only for
// the two instruction parties.
type AccountView struct {
	ID            string `json:"id"`
	Balance       int64  `json:"balance"`
	BalanceBefore int64  `json:"balance_before"`
	Currency      string `json:"currency"`
}

// SettlementResult is the uniform response envelope for every exit
// path. The parsed fields are pointers because a syntax failure
// reports null for whatever could not be recovered from the text.
type SettlementResult struct {
	Type          *string       `json:"type"`
	Amount        *int64        `json:"amount"`
	Currency      *string       `json:"currency"`
	DebitAccount  *string       `json:"debit_account"`
	CreditAccount *string       `json:"credit_account"`
	ExecuteBy     *string       `json:"execute_by"`
	Status        Status        `json:"status"`
	StatusReason  string        `json:"status_reason"`
	StatusCode    string        `json:"status_code"`
	Accounts      []AccountView `json:"accounts"`
}
