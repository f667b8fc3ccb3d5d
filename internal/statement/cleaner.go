package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/model"
)

// DateFormat is the fixed statement date layout, e.g. "05 Jan 2024".
const DateFormat = "02 Jan 2006"

// Required statement columns, in reporting order.
const (
	colDate      = "Date"
	colDetails   = "Details"
	colAmount    = "Amount"
	colDirection = "Debit/Credit"
)

var requiredColumns = []string{colDate, colDetails, colAmount, colDirection}

// Result holds the cleaned transactions plus the count of rows excluded for
// row-level damage (bad date, bad amount, bad direction).
type Result struct {
	Transactions []model.Transaction
	Excluded     int
}

// Clean validates raw statement rows and returns typed transactions.
//
// The header row is whitespace-trimmed before validation; a missing required
// column fails the whole batch with *MissingColumnsError naming every absent
// column. Rows that fail to parse are excluded and counted, never fatal.
func Clean(rows [][]string) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	index, missing := headerIndex(rows[0])
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	result := &Result{}
	for _, row := range rows[1:] {
		txn, ok := cleanRow(row, index)
		if !ok {
			result.Excluded++
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}
	return result, nil
}

// headerIndex maps required column names to their positions, and reports
// which required columns are absent.
func headerIndex(header []string) (map[string]int, []string) {
	index := make(map[string]int, len(requiredColumns))
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	return index, missing
}

func cleanRow(row []string, index map[string]int) (model.Transaction, bool) {
	cell := func(col string) (string, bool) {
		i := index[col]
		if i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	dateStr, ok := cell(colDate)
	if !ok {
		return model.Transaction{}, false
	}
	date, err := time.Parse(DateFormat, dateStr)
	if err != nil {
		return model.Transaction{}, false
	}

	amountStr, ok := cell(colAmount)
	if !ok {
		return model.Transaction{}, false
	}
	// Amounts may carry thousands-separator commas, e.g. "1,250.00".
	amount, err := decimal.NewFromString(strings.ReplaceAll(amountStr, ",", ""))
	if err != nil {
		return model.Transaction{}, false
	}

	directionStr, ok := cell(colDirection)
	if !ok {
		return model.Transaction{}, false
	}
	direction, err := model.ParseDirection(directionStr)
	if err != nil {
		return model.Transaction{}, false
	}

	details, _ := cell(colDetails)

	return model.Transaction{
		Date:      date,
		Details:   details,
		Amount:    amount,
		Direction: direction,
		Category:  model.Uncategorized,
	}, true
}
