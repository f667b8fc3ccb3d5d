package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-dev/finsight/internal/model"
)

func fixtureTransactions(t *testing.T) []model.Transaction {
	t.Helper()
	day := func(d int) time.Time {
		return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
	}
	amount := func(s string) decimal.Decimal {
		a, err := decimal.NewFromString(s)
		require.NoError(t, err)
		return a
	}

	return []model.Transaction{
		{Date: day(5), Details: "Amazon order #123", Amount: amount("1250.00"), Direction: model.DirectionDebit, Category: "Shopping"},
		{Date: day(6), Details: "Uber trip home", Amount: amount("23.50"), Direction: model.DirectionDebit, Category: "Transportation"},
		{Date: day(7), Details: "ACME payroll", Amount: amount("3500.00"), Direction: model.DirectionCredit, Category: model.Uncategorized},
		{Date: day(8), Details: "Netflix subscription", Amount: amount("15.99"), Direction: model.DirectionDebit, Category: "Entertainment"},
		{Date: day(9), Details: "Amazon refund", Amount: amount("40.00"), Direction: model.DirectionCredit, Category: "Shopping"},
	}
}

var storeOrder = []string{
	"Shopping", "Transportation", "Food & Dining",
	"Entertainment", "Utilities", model.Uncategorized,
}

func TestSummarize_Metrics(t *testing.T) {
	s := Summarize(fixtureTransactions(t), storeOrder)

	assert.Equal(t, "3540.00", s.TotalIncome.StringFixed(2))
	assert.Equal(t, "1289.49", s.TotalExpenses.StringFixed(2))
	assert.Equal(t, "2250.51", s.NetIncome.StringFixed(2))
}

func TestSummarize_NetEqualsIncomeMinusExpenses(t *testing.T) {
	s := Summarize(fixtureTransactions(t), storeOrder)
	assert.True(t, s.NetIncome.Equal(s.TotalIncome.Sub(s.TotalExpenses)))
}

func TestSummarize_CategoryTotals(t *testing.T) {
	s := Summarize(fixtureTransactions(t), storeOrder)

	// Insertion order, categories without transactions omitted.
	var names []string
	for _, ct := range s.Categories {
		names = append(names, ct.Name)
	}
	assert.Equal(t, []string{"Shopping", "Transportation", "Entertainment", model.Uncategorized}, names)

	shopping := s.Categories[0]
	assert.Equal(t, 2, shopping.Count)
	// Spent counts debits only; the refund credit is excluded.
	assert.Equal(t, "1250.00", shopping.Spent.StringFixed(2))

	uncategorized := s.Categories[3]
	assert.Equal(t, 1, uncategorized.Count)
	assert.Equal(t, "0.00", uncategorized.Spent.StringFixed(2))
}

func TestSummarize_UnknownCategoryAppended(t *testing.T) {
	txns := fixtureTransactions(t)
	txns[1].Category = "Legacy Label"

	s := Summarize(txns, storeOrder)
	last := s.Categories[len(s.Categories)-1]
	assert.Equal(t, "Legacy Label", last.Name)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, storeOrder)
	assert.Equal(t, "0.00", s.TotalIncome.StringFixed(2))
	assert.Equal(t, "0.00", s.TotalExpenses.StringFixed(2))
	assert.Equal(t, "0.00", s.NetIncome.StringFixed(2))
	assert.Empty(t, s.Categories)
}

func TestRender(t *testing.T) {
	txns := fixtureTransactions(t)
	s := Summarize(txns, storeOrder)

	var buf bytes.Buffer
	Render(&buf, s, txns, Options{Currency: "$", MaxRows: 3})
	out := buf.String()

	assert.Contains(t, out, "Total Income:   $3540.00")
	assert.Contains(t, out, "Total Expenses: $1289.49")
	assert.Contains(t, out, "Net Income:     $2250.51")
	assert.Contains(t, out, "Shopping")
	assert.Contains(t, out, "Amazon order #123")
	assert.Contains(t, out, "... and 2 more transactions")
	assert.NotContains(t, out, "Amazon refund")
}

func TestRender_AllRowsWhenUncapped(t *testing.T) {
	txns := fixtureTransactions(t)
	s := Summarize(txns, storeOrder)

	var buf bytes.Buffer
	Render(&buf, s, txns, Options{Currency: "$"})
	assert.Contains(t, buf.String(), "Amazon refund")
	assert.NotContains(t, buf.String(), "more transactions")
}
