// Package table provides the in-memory tabular result produced by a parse run.
package table

import "fmt"

// DiagnosticColumn is the extra column appended under the include error
// policy. Failure rows carry the failure reason there; matched rows carry the
// empty marker.
const DiagnosticColumn = "_error"

// Table is an immutable in-memory table: ordered column names and rows of
// string cells. Ownership transfers entirely to the caller; the engine keeps
// no reference after a run.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// Columns returns the column names in declared order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns row i. The returned slice must not be modified.
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// Cell returns the value at row i, column name. The second return value is
// false if the column does not exist.
func (t *Table) Cell(i int, name string) (string, bool) {
	col, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.rows[i][col], true
}

// Column returns all values of the named column in row order. The second
// return value is false if the column does not exist.
func (t *Table) Column(name string) ([]string, bool) {
	col, ok := t.index[name]
	if !ok {
		return nil, false
	}
	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[col]
	}
	return values, true
}

// Records returns the rows as column-name-to-value maps, one per row. Handy
// for JSON output and for callers that prefer named access.
func (t *Table) Records() []map[string]string {
	records := make([]map[string]string, len(t.rows))
	for i, row := range t.rows {
		rec := make(map[string]string, len(t.columns))
		for j, col := range t.columns {
			rec[col] = row[j]
		}
		records[i] = rec
	}
	return records
}

// TooLargeError is returned when the assembled table would exceed the
// configured row cap. Bounding the result is explicit, never a silent
// truncation.
type TooLargeError struct {
	Limit int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("result exceeds maximum of %d rows", e.Limit)
}
