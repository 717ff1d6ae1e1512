package snapshot

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/payflow-dev/payflow/internal/model"
)

// YAMLParser reads snapshots from a YAML list of account entries.
type YAMLParser struct{}

// Format returns "yaml".
func (p *YAMLParser) Format() string { return "yaml" }

type yamlAccount struct {
	ID       string `yaml:"id"`
	Balance  string `yaml:"balance"`
	Currency string `yaml:"currency"`
}

// Parse reads a snapshot YAML document.
func (p *YAMLParser) Parse(r io.Reader) ([]model.Account, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot YAML: %w", err)
	}

	var rows []yamlAccount
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing snapshot YAML: %w", err)
	}

	var accounts []model.Account
	for i, row := range rows {
		balance, err := decimal.NewFromString(row.Balance)
		if err != nil {
			return nil, fmt.Errorf("entry %d: parsing balance %q: %w", i, row.Balance, err)
		}
		units, err := toBaseUnits(balance)
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
