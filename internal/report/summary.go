package report

import (
	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/model"
)

// CategoryTotal aggregates the transactions labeled with one category.
type CategoryTotal struct {
	Name  string
	Count int
	Spent decimal.Decimal // sum of debit amounts
}

// Summary holds the headline metrics for a cleaned, labeled batch.
type Summary struct {
	TotalIncome   decimal.Decimal // sum of credit amounts
	TotalExpenses decimal.Decimal // sum of debit amounts
	NetIncome     decimal.Decimal // income minus expenses
	Categories    []CategoryTotal
}

// Summarize computes batch metrics. Category totals follow categoryOrder
// (store insertion order); labels not in the order list are appended in
// first-seen order. Categories with no transactions are omitted.
func Summarize(txns []model.Transaction, categoryOrder []string) Summary {
	s := Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	totals := make(map[string]*CategoryTotal)
	order := append([]string(nil), categoryOrder...)

	for _, txn := range txns {
		switch txn.Direction {
		case model.DirectionCredit:
			s.TotalIncome = s.TotalIncome.Add(txn.Amount)
		case model.DirectionDebit:
			s.TotalExpenses = s.TotalExpenses.Add(txn.Amount)
		}

		ct, ok := totals[txn.Category]
		if !ok {
			ct = &CategoryTotal{Name: txn.Category, Spent: decimal.Zero}
			totals[txn.Category] = ct
			if !contains(order, txn.Category) {
				order = append(order, txn.Category)
			}
		}
		ct.Count++
		if txn.Direction == model.DirectionDebit {
			ct.Spent = ct.Spent.Add(txn.Amount)
		}
	}

	s.NetIncome = s.TotalIncome.Sub(s.TotalExpenses)

	for _, name := range order {
		if ct, ok := totals[name]; ok {
			s.Categories = append(s.Categories, *ct)
		}
	}
	return s
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
