package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/payflow-dev/payflow/internal/model"
)

const (
	numFields   = 3
	colID       = 0
	colBalance  = 1
	colCurrency = 2
)

// Header is the CSV header for snapshot files.
const Header = "id,balance,currency"

// CSVParser reads snapshots from "id,balance,currency" CSV files.
type CSVParser struct{}

// Format returns "csv".
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a snapshot CSV, header row included.
func (p *CSVParser) Parse(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading snapshot CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteCSV writes a snapshot as CSV, header row included.
func WriteCSV(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "balance", "currency"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colID] = acct.ID
	row[colBalance] = strconv.FormatInt(acct.Balance, 10)
	row[colCurrency] = acct.Currency
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}
	units, err := toBaseUnits(balance)
	if err != nil {
		return model.Account{}, err
	}

	return model.Account{
		ID:       record[colID],
		Balance:  units,
		Currency: record[colCurrency],
	}, nil
}
