package server

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/payflow-dev/payflow/internal/model"
)

// accountPayload is one snapshot row on the wire. Balances decode via
// decimal so large values survive exactly; the core works in integer
// base units, so fractional balances are rejected at this boundary.
type accountPayload struct {
	ID       string          `json:"id"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// evaluateRequest is the POST /payment-instructions body.
type evaluateRequest struct {
	Accounts    []accountPayload `json:"accounts"`
	Instruction string           `json:"instruction"`
}

// decodeEvaluateRequest decodes and schema-checks a request body,
// returning the snapshot and trimmed instruction text.
func decodeEvaluateRequest(r io.Reader) ([]model.Account, string, error) {
	var req evaluateRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, "", fmt.Errorf("invalid request body: %w", err)
	}

	instructionText := strings.TrimSpace(req.Instruction)
	if instructionText == "" {
		return nil, "", fmt.Errorf("instruction must be a non-empty string")
	}
	if req.Accounts == nil {
		return nil, "", fmt.Errorf("accounts is required")
	}

	accounts := make([]model.Account, 0, len(req.Accounts))
	for i, a := range req.Accounts {
		if a.ID == "" {
			return nil, "", fmt.Errorf("accounts[%d]: id is required", i)
		}
		if a.Currency == "" {
			return nil, "", fmt.Errorf("accounts[%d]: currency is required", i)
		}
		if !a.Balance.IsInteger() {
			return nil, "", fmt.Errorf("accounts[%d]: balance %s is not in integer base units", i, a.Balance)
		}
		accounts = append(accounts, model.Account{
			ID:       a.ID,
			Balance:  a.Balance.IntPart(),
			Currency: a.Currency,
		})
	}

	return accounts, instructionText, nil
}
