package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/payflow-dev/payflow/internal/model"
)

// JSONParser reads snapshots from a JSON array of account objects.
type JSONParser struct{}

// Format returns "json".
func (p *JSONParser) Format() string { return "json" }

type jsonAccount struct {
	ID       string          `json:"id"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// Parse reads a snapshot JSON document.
func (p *JSONParser) Parse(r io.Reader) ([]model.Account, error) {
	var rows []jsonAccount
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("reading snapshot JSON: %w", err)
	}

	var accounts []model.Account
	for i, row := range rows {
		units, err := toBaseUnits(row.Balance)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		accounts = append(accounts, model.Account{
			ID:       row.ID,
			Balance:  units,
			Currency: row.Currency,
		})
	}
	return accounts, nil
}
