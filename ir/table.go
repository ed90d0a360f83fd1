package ir

import "fmt"

// Table is the pipe-delimited block of a section: a fixed, ordered
// column list and rows whose length always equals the column count.
// An omitted cell holds the EmptyKind marker.
type Table struct {
	Columns []string
	Rows    [][]*Value
}

func (t *Table) NumRows() int {
	return len(t.Rows)
}

func (t *Table) NumCols() int {
	return len(t.Columns)
}

// ColumnIndex returns the position of a column by name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, column-name), or nil when the row
// index is out of range or the column does not exist.
func (t *Table) Cell(row int, column string) *Value {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	ci := t.ColumnIndex(column)
	if ci < 0 {
		return nil
	}
	return t.Rows[row][ci]
}

// FetchCell is Cell with an error naming what was missing.
func (t *Table) FetchCell(row int, column string) (*Value, error) {
	if row < 0 || row >= len(t.Rows) {
		return nil, fmt.Errorf("row %d out of range (%d rows)", row, len(t.Rows))
	}
	ci := t.ColumnIndex(column)
	if ci < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, column)
	}
	return t.Rows[row][ci], nil
}
