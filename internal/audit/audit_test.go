package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry(code string) Entry {
	return Entry{
		Timestamp:  time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		RequestID:  "req-1",
		Kind:       "DEBIT",
		Status:     "successful",
		StatusCode: code,
	}
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{sampleEntry("AP00")}))
	require.NoError(t, Append(dir, []Entry{sampleEntry("AC01")}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "AP00", entries[0].StatusCode)
	assert.Equal(t, "AC01", entries[1].StatusCode)
	assert.Equal(t, "req-1", entries[0].RequestID)
}

func TestReadMissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHeaderWrittenOnce(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{sampleEntry("AP00")}))
	require.NoError(t, Append(dir, []Entry{sampleEntry("AP02")}))

	data, err := os.ReadFile(filepath.Join(dir, "settlement-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestMarshalRoundTrip(t *testing.T) {
	e := sampleEntry("DT01")

	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshalBadRow(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "four", "fields", "here"})
	require.Error(t, err)

	_, err = UnmarshalEntry([]string{"not-a-time", "r", "DEBIT", "failed", "SY03"})
	require.Error(t, err)
}
