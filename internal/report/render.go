package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/finsight-dev/finsight/internal/model"
)

// Options controls summary rendering.
type Options struct {
	Currency string // symbol prefixed to amounts, e.g. "$"
	MaxRows  int    // transaction rows to show; 0 = all
}

// Render writes the headline metrics, the per-category table, and the
// labeled transactions to w.
func Render(w io.Writer, s Summary, txns []model.Transaction, opts Options) {
	fmt.Fprintf(w, "Total Income:   %s%s\n", opts.Currency, s.TotalIncome.StringFixed(2))
	fmt.Fprintf(w, "Total Expenses: %s%s\n", opts.Currency, s.TotalExpenses.StringFixed(2))
	fmt.Fprintf(w, "Net Income:     %s%s\n\n", opts.Currency, s.NetIncome.StringFixed(2))

	renderCategories(w, s, opts)
	fmt.Fprintln(w)
	renderTransactions(w, txns, opts)
}

func renderCategories(w io.Writer, s Summary, opts Options) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Category", "Transactions", "Spent"})
	for _, ct := range s.Categories {
		t.AppendRow(table.Row{ct.Name, ct.Count, opts.Currency + ct.Spent.StringFixed(2)})
	}
	t.Render()
}

func renderTransactions(w io.Writer, txns []model.Transaction, opts Options) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Details", "Amount", "Direction", "Category"})

	shown := 0
	for _, txn := range txns {
		if opts.MaxRows > 0 && shown >= opts.MaxRows {
			break
		}
		amount := opts.Currency + txn.Amount.StringFixed(2)
		direction := text.FgRed.Sprint(txn.Direction)
		if txn.Direction == model.DirectionCredit {
			direction = text.FgGreen.Sprint(txn.Direction)
		}
		t.AppendRow(table.Row{
			txn.Date.Format("2006-01-02"),
			txn.Details,
			amount,
			direction,
			txn.Category,
		})
		shown++
	}
	t.Render()

	if opts.MaxRows > 0 && len(txns) > opts.MaxRows {
		fmt.Fprintf(w, "... and %d more transactions\n", len(txns)-opts.MaxRows)
	}
}
