package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"
)

// CSVParser parses comma-separated bank-statement exports.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a CSV statement into raw rows. Ragged rows are tolerated here;
// Clean decides row-by-row whether they are usable. Non-UTF-8 input is
// rejected up front so the cleaner only ever sees decodable text.
func (p *CSVParser) Parse(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	if !utf8.Valid(data) {
		return nil, &EncodingError{Err: fmt.Errorf("statement is not valid UTF-8")}
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	return rows, nil
}
