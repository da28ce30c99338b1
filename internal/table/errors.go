package table

import "fmt"

// MissingColumnError reports a required logical field whose mapped column
// is absent from a source table. It is fatal: no audit runs against a
// table that cannot be resolved.
type MissingColumnError struct {
	Table  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: required column %q not found", e.Table, e.Column)
}

// TypeCoercionError reports a cell that was expected to be numeric but
// could not be parsed as a decimal. Row is 1-based over data rows.
type TypeCoercionError struct {
	Table  string
	Row    int
	Column string
	Value  string
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("%s row %d: column %q: cannot parse %q as a number", e.Table, e.Row, e.Column, e.Value)
}
