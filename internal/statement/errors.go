package statement

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned when a statement contains no rows at all.
var ErrEmptyInput = errors.New("statement contains no rows")

// MissingColumnsError aborts a batch whose header lacks required columns.
// It names every missing column, not just the first.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// EncodingError aborts a batch whose bytes could not be decoded.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("decoding statement: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
