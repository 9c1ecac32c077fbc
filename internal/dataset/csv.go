package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// CSVLoader reads comma-separated sheets. Lines starting with "#" are comments.
type CSVLoader struct{}

// Format returns the loader name.
func (l *CSVLoader) Format() string { return "csv" }

// Load reads a CSV sheet whose first record is the header.
func (l *CSVLoader) Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var header []string
	var rows [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		if header == nil {
			header = rec
			continue
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, rec)
		lines = append(lines, line)
	}

	return newTable(header, rows, lines)
}
