package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payflow-dev/payflow/internal/model"
)

func TestDefaultRegistryFormats(t *testing.T) {
	r := DefaultRegistry()

	for _, format := range []string{"csv", "json", "yaml", "CSV"} {
		assert.NotNil(t, r.Get(format), format)
	}
	assert.Nil(t, r.Get("xml"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVParser{})
	assert.Panics(t, func() { r.Register(&CSVParser{}) })
}

func TestCSVRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{ID: "A1", Balance: 500, Currency: "USD"},
		{ID: "alice@bank", Balance: 0, Currency: "GHS"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, accounts))

	got, err := (&CSVParser{}).Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestCSVRejectsFractionalBalance(t *testing.T) {
	in := "id,balance,currency\nA1,10.5,USD\n"
	_, err := (&CSVParser{}).Parse(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer base units")
}

func TestCSVRejectsBadBalance(t *testing.T) {
	in := "id,balance,currency\nA1,lots,USD\n"
	_, err := (&CSVParser{}).Parse(strings.NewReader(in))
	require.Error(t, err)
}

func TestJSONParse(t *testing.T) {
	in := `[{"id":"A1","balance":500,"currency":"usd"},{"id":"A2","balance":10,"currency":"USD"}]`

	got, err := (&JSONParser{}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.Account{ID: "A1", Balance: 500, Currency: "usd"}, got[0])
	assert.Equal(t, model.Account{ID: "A2", Balance: 10, Currency: "USD"}, got[1])
}

func TestJSONRejectsFractionalBalance(t *testing.T) {
	in := `[{"id":"A1","balance":10.25,"currency":"USD"}]`
	_, err := (&JSONParser{}).Parse(strings.NewReader(in))
	require.Error(t, err)
}

func TestJSONLargeBalanceExact(t *testing.T) {
	// Values beyond float64's integer precision must survive.
	in := `[{"id":"A1","balance":9007199254740993,"currency":"USD"}]`

	got, err := (&JSONParser{}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(9007199254740993), got[0].Balance)
}

func TestYAMLParse(t *testing.T) {
	in := "- id: A1\n  balance: 500\n  currency: USD\n- id: A2\n  balance: 10\n  currency: usd\n"

	got, err := (&YAMLParser{}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.Account{ID: "A1", Balance: 500, Currency: "USD"}, got[0])
}

func TestYAMLRejectsFractionalBalance(t *testing.T) {
	in := "- id: A1\n  balance: 1.5\n  currency: USD\n"
	_, err := (&YAMLParser{}).Parse(strings.NewReader(in))
	require.Error(t, err)
}
