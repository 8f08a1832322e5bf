package table

import "fmt"

// Builder assembles a Table row by row. A zero maxRows means unlimited.
type Builder struct {
	table   *Table
	maxRows int
}

// NewBuilder creates a Builder for a table with the given columns.
func NewBuilder(columns []string, maxRows int) *Builder {
	cols := make([]string, len(columns))
	copy(cols, columns)

	index := make(map[string]int, len(cols))
	for i, col := range cols {
		index[col] = i
	}

	return &Builder{
		table: &Table{
			columns: cols,
			index:   index,
		},
		maxRows: maxRows,
	}
}

// Append adds one row. The row length must equal the column count. Returns
// *TooLargeError once the row cap is reached.
func (b *Builder) Append(row []string) error {
	if len(row) != len(b.table.columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(b.table.columns))
	}
	if b.maxRows > 0 && len(b.table.rows) >= b.maxRows {
		return &TooLargeError{Limit: b.maxRows}
	}
	b.table.rows = append(b.table.rows, row)
	return nil
}

// Len returns the number of rows appended so far.
func (b *Builder) Len() int {
	return len(b.table.rows)
}

// Table returns the assembled table. The builder must not be used afterwards.
func (b *Builder) Table() *Table {
	t := b.table
	b.table = nil
	return t
}
