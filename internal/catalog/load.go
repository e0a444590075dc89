package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadError is returned when the source table cannot be read. It is fatal for
// the session and is never retried.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading catalog: %v", e.Err)
	}
	return fmt.Sprintf("loading catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadFile reads every row of the CSV file at path.
func LoadFile(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return rows, nil
}

// ReadRows decodes a CSV stream with a header line into RawRows. Short rows
// are padded with empty cells, extra cells are ignored.
func ReadRows(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &LoadError{Err: errors.New("empty table: missing header")}
	}
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("reading header: %w", err)}
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Err: fmt.Errorf("reading row %d: %w", len(rows)+1, err)}
		}

		row := make(RawRow, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
