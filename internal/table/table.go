// Package table provides a minimal tabular data abstraction for the audit
// inputs: an ordered list of rows mapping trimmed column headers to raw
// cell strings, plus readers for CSV and XLSX sources.
package table

import "strings"

// Row maps a column header to the raw cell text. Blank cells are empty
// strings.
type Row map[string]string

// Table is a fully-read tabular source: the header row plus all data rows
// in input order.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table's header contains the given column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// fromRecords builds a Table from raw records where the first record is
// the header. Headers are whitespace-trimmed; short rows are padded with
// blanks, extra cells beyond the header are dropped.
func fromRecords(name string, records [][]string) *Table {
	t := &Table{Name: name}
	if len(records) == 0 {
		return t
	}

	for _, h := range records[0] {
		t.Columns = append(t.Columns, strings.TrimSpace(h))
	}

	for _, rec := range records[1:] {
		row := make(Row, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
