package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// readRows reads one CSV file and returns its data rows as insert arguments
// aligned to the declared column list. The header must match the declared
// columns exactly; empty cells become NULL.
func readRows(path string, columns []string) ([][]any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &MalformedInputError{Path: path, Reason: "no header row"}
		}
		return nil, &MalformedInputError{Path: path, Reason: err.Error()}
	}

	if err := matchHeader(header, columns); err != nil {
		return nil, &MalformedInputError{Path: path, Reason: err.Error()}
	}

	var rows [][]any
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &MalformedInputError{Path: path, Reason: err.Error()}
		}

		row := make([]any, len(record))
		for i, value := range record {
			if value == "" {
				row[i] = nil
			} else {
				row[i] = value
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func matchHeader(header, columns []string) error {
	if len(header) != len(columns) {
		return fmt.Errorf("header has %d columns, expected %d (%v)", len(header), len(columns), columns)
	}
	for i, col := range columns {
		if header[i] != col {
			return fmt.Errorf("header column %d is %q, expected %q", i+1, header[i], col)
		}
	}
	return nil
}
