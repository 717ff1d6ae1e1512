package instruction

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payflow-dev/payflow/internal/messages"
	"github.com/payflow-dev/payflow/internal/model"
)

func requireSyntaxError(t *testing.T, err error, reason messages.Key) {
	t.Helper()
	require.Error(t, err)
	var synErr *SyntaxError
	require.True(t, errors.As(err, &synErr), "expected *SyntaxError, got %T", err)
	assert.Equal(t, reason, synErr.Reason)
}

func TestParse_Debit(t *testing.T) {
	parsed, err := Parse("DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2")
	require.NoError(t, err)

	assert.Equal(t, model.KindDebit, parsed.Kind)
	assert.Equal(t, "100", parsed.AmountText)
	assert.Equal(t, "USD", parsed.Currency)
	assert.Equal(t, "A1", parsed.DebitAccount)
	assert.Equal(t, "A2", parsed.CreditAccount)
	assert.Empty(t, parsed.ExecuteBy)
}

func TestParse_DebitWithDate(t *testing.T) {
	parsed, err := Parse("DEBIT 250 NGN FROM ACCOUNT src-1 FOR CREDIT TO ACCOUNT dst-2 ON 2030-06-15")
	require.NoError(t, err)

	assert.Equal(t, model.KindDebit, parsed.Kind)
	assert.Equal(t, "src-1", parsed.DebitAccount)
	assert.Equal(t, "dst-2", parsed.CreditAccount)
	assert.Equal(t, "2030-06-15", parsed.ExecuteBy)
}

func TestParse_Credit(t *testing.T) {
	parsed, err := Parse("CREDIT 50 GBP TO ACCOUNT X FROM ACCOUNT Y ON 2099-01-01")
	require.NoError(t, err)

	assert.Equal(t, model.KindCredit, parsed.Kind)
	assert.Equal(t, "50", parsed.AmountText)
	assert.Equal(t, "GBP", parsed.Currency)
	assert.Equal(t, "Y", parsed.DebitAccount)
	assert.Equal(t, "X", parsed.CreditAccount)
	assert.Equal(t, "2099-01-01", parsed.ExecuteBy)
}

func TestParse_KeywordsCaseInsensitive(t *testing.T) {
	parsed, err := Parse("debit 100 usd from account a1 for credit to account A2")
	require.NoError(t, err)

	assert.Equal(t, model.KindDebit, parsed.Kind)
	// Keywords fold; data keeps its casing except currency.
	assert.Equal(t, "USD", parsed.Currency)
	assert.Equal(t, "a1", parsed.DebitAccount)
	assert.Equal(t, "A2", parsed.CreditAccount)
}

func TestParse_WhitespaceNormalized(t *testing.T) {
	parsed, err := Parse("  DEBIT \t100\n USD \r\n FROM ACCOUNT  A1  FOR CREDIT TO ACCOUNT A2  ")
	require.NoError(t, err)

	assert.Equal(t, "100", parsed.AmountText)
	assert.Equal(t, "A1", parsed.DebitAccount)
	assert.Equal(t, "A2", parsed.CreditAccount)
}

func TestParse_RoundTrip(t *testing.T) {
	// Re-parsing the canonical form of a parsed instruction yields the
	// same record.
	inputs := []string{
		"debit  42 ghs FROM account alice@bank FOR CREDIT to ACCOUNT bob.savings",
		"CREDIT 7 usd TO ACCOUNT X9 from account Y8 on 2031-12-31",
	}
	for _, input := range inputs {
		first, err := Parse(input)
		require.NoError(t, err, input)

		var canonical string
		if first.Kind == model.KindDebit {
			canonical = fmt.Sprintf("DEBIT %s %s FROM ACCOUNT %s FOR CREDIT TO ACCOUNT %s",
				first.AmountText, first.Currency, first.DebitAccount, first.CreditAccount)
		} else {
			canonical = fmt.Sprintf("CREDIT %s %s TO ACCOUNT %s FROM ACCOUNT %s",
				first.AmountText, first.Currency, first.CreditAccount, first.DebitAccount)
		}
		if first.ExecuteBy != "" {
			canonical += " ON " + first.ExecuteBy
		}

		second, err := Parse(canonical)
		require.NoError(t, err, canonical)
		assert.Equal(t, first, second, input)
	}
}

func TestParse_KeywordLikeAccountID(t *testing.T) {
	// "FOR" inside an account ID is not a keyword: markers are
	// space-delimited and extraction is anchored to marker indices.
	parsed, err := Parse("DEBIT 10 USD FROM ACCOUNT INFORMAL FOR CREDIT TO ACCOUNT AFORB")
	require.NoError(t, err)

	assert.Equal(t, "INFORMAL", parsed.DebitAccount)
	assert.Equal(t, "AFORB", parsed.CreditAccount)
}

func TestParse_UnknownPrefix(t *testing.T) {
	_, err := Parse("SEND 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2")
	requireSyntaxError(t, err, messages.MissingKeyword)
}

func TestParse_DebitMissingKeywords(t *testing.T) {
	cases := []string{
		"DEBIT 100 USD ACCOUNT A1 FOR CREDIT TO ACCOUNT A2",   // no FROM
		"DEBIT 100 USD FROM ACCOUNT A1",                       // no FOR, no TO
		"DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT ACCOUNT A2", // no TO
	}
	for _, input := range cases {
		_, err := Parse(input)
		requireSyntaxError(t, err, messages.MissingKeyword)
	}
}

func TestParse_DebitMissingCreditKeyword(t *testing.T) {
	_, err := Parse("DEBIT 100 USD FROM ACCOUNT A1 FOR TRANSFER TO ACCOUNT A2")
	requireSyntaxError(t, err, messages.MissingKeyword)
}

func TestParse_DebitKeywordOrder(t *testing.T) {
	_, err := Parse("DEBIT 100 USD FOR CREDIT TO ACCOUNT A2 FROM ACCOUNT A1")
	requireSyntaxError(t, err, messages.InvalidOrder)
}

func TestParse_DebitAccountMarkerAfterFor(t *testing.T) {
	// FROM without a following ACCOUNT before FOR.
	_, err := Parse("DEBIT 100 USD FROM A1 FOR CREDIT TO ACCOUNT A2")
	requireSyntaxError(t, err, messages.InvalidOrder)
}

func TestParse_CreditKeywordOrder(t *testing.T) {
	_, err := Parse("CREDIT 50 GBP FROM ACCOUNT Y TO ACCOUNT X")
	requireSyntaxError(t, err, messages.InvalidOrder)
}

func TestParse_CreditMissingKeywords(t *testing.T) {
	_, err := Parse("CREDIT 50 GBP TO ACCOUNT X")
	requireSyntaxError(t, err, messages.MissingKeyword)
}

func TestParse_MalformedAmountField(t *testing.T) {
	// Only one token between the leading keyword and the directional
	// keyword.
	_, err := Parse("DEBIT 100 FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2")
	requireSyntaxError(t, err, messages.Malformed)

	_, err = Parse("CREDIT GBP TO ACCOUNT X FROM ACCOUNT Y")
	requireSyntaxError(t, err, messages.Malformed)
}

func TestParse_AmountFieldExtraTokensIgnored(t *testing.T) {
	parsed, err := Parse("DEBIT 100 USD exactly FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2")
	require.NoError(t, err)
	assert.Equal(t, "100", parsed.AmountText)
	assert.Equal(t, "USD", parsed.Currency)
}

func TestParse_DateOnlyAfterSecondAccount(t *testing.T) {
	// The first ON marker sits before the second account marker, so no
	// date field opens; the text stays part of the debit account field.
	parsed, err := Parse("DEBIT 10 USD FROM ACCOUNT A ON B FOR CREDIT TO ACCOUNT A2")
	require.NoError(t, err)
	assert.Equal(t, "A ON B", parsed.DebitAccount)
	assert.Equal(t, "A2", parsed.CreditAccount)
	assert.Empty(t, parsed.ExecuteBy)
}
