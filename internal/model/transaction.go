package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether a statement row moves money out of or into the account.
type Direction string

const (
	DirectionDebit  Direction = "Debit"
	DirectionCredit Direction = "Credit"
)

// Uncategorized is the reserved fallback category label. It always exists in
// the category store and is never matched against.
const Uncategorized = "Uncategorized"

// ParseDirection parses the literal statement values "Debit" and "Credit".
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionDebit, DirectionCredit:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// Transaction represents a cleaned bank-statement row.
type Transaction struct {
	Date      time.Time
	Details   string
	Amount    decimal.Decimal // non-negative; Direction carries the sign
	Direction Direction
	Category  string // assigned label, defaults to Uncategorized
}
