package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVReader reads a comma-separated table whose first row is the header.
type CSVReader struct{}

// Format returns the file extension this reader handles.
func (CSVReader) Format() string { return "csv" }

// Read loads an entire CSV file into a Table. The sheet argument is
// ignored; CSV files have a single sheet.
func (CSVReader) Read(path, sheet string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f, path)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ReadCSV reads a table from a CSV stream. Rows may have varying field
// counts; short rows are padded with blank cells.
func ReadCSV(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV %s: %w", name, err)
	}
	return fromRecords(name, records), nil
}
