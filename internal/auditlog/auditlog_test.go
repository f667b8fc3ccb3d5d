package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)

	err := Append(dir, []Entry{
		{Timestamp: ts, Action: ActionAddCategory, Category: "Coffee"},
		{Timestamp: ts, Action: ActionAddKeyword, Category: "Coffee", Detail: "latte"},
	})
	require.NoError(t, err)

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, ActionAddCategory, entries[0].Action)
	assert.Equal(t, "Coffee", entries[0].Category)
	assert.True(t, entries[0].Timestamp.Equal(ts))

	assert.Equal(t, ActionAddKeyword, entries[1].Action)
	assert.Equal(t, "latte", entries[1].Detail)
}

func TestAppend_HeaderWrittenOnce(t *testing.T) {
	dir := t.TempDir()
	ts := time.Now()

	require.NoError(t, Append(dir, []Entry{{Timestamp: ts, Action: ActionLearn, Category: "Shopping", Detail: "bookshop"}}))
	require.NoError(t, Append(dir, []Entry{{Timestamp: ts, Action: ActionLearn, Category: "Shopping", Detail: "florist"}}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "category-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRead_NoFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 4 fields")
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	_, err := UnmarshalEntry([]string{"NOTATIME", "learn", "Shopping", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}
