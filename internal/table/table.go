// Package table defines the in-memory tabular data model shared by the
// loader and the cleaning stages: ordered rows over a fixed set of named
// columns, with typed cells and an explicit null marker.
package table

import (
	"errors"
	"fmt"
)

// ErrRowWidth is returned when an appended row does not match the column count.
var ErrRowWidth = errors.New("row width does not match column count")

// Row holds one cell per table column, in column order.
type Row []Value

// Table is an ordered collection of rows sharing a fixed column schema.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given name and column schema.
func New(name string, columns []string) *Table {
	return &Table{
		Name:    name,
		Columns: append([]string(nil), columns...),
	}
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}

	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// AppendRow adds a row, which must have exactly one cell per column.
func (t *Table) AppendRow(row Row) error {
	if len(row) != len(t.Columns) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRowWidth, len(row), len(t.Columns))
	}

	t.Rows = append(t.Rows, row)

	return nil
}

// Cell returns the value at the given row for the named column.
// Absent columns yield the null marker.
func (t *Table) Cell(row int, column string) Value {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return Null()
	}

	return t.Rows[row][idx]
}

// FilterRows keeps only rows for which keep returns true and reports how
// many rows were dropped. Row order is preserved.
func (t *Table) FilterRows(keep func(Row) bool) int {
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}

	dropped := len(t.Rows) - len(kept)
	t.Rows = kept

	return dropped
}

// UpdateColumn rewrites every cell of the named column through fn.
// Absent columns are silently skipped; the return reports whether the
// column exists.
func (t *Table) UpdateColumn(name string, fn func(Value) Value) bool {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return false
	}

	for _, row := range t.Rows {
		row[idx] = fn(row[idx])
	}

	return true
}

// DropColumns removes the named columns from the schema and from every row.
// Names that do not exist are ignored.
func (t *Table) DropColumns(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	keepIdx := make([]int, 0, len(t.Columns))
	keptCols := make([]string, 0, len(t.Columns))

	for i, c := range t.Columns {
		if !drop[c] {
			keepIdx = append(keepIdx, i)
			keptCols = append(keptCols, c)
		}
	}

	if len(keptCols) == len(t.Columns) {
		return
	}

	for r, row := range t.Rows {
		kept := make(Row, len(keepIdx))
		for j, i := range keepIdx {
			kept[j] = row[i]
		}

		t.Rows[r] = kept
	}

	t.Columns = keptCols
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := New(t.Name, t.Columns)

	c.Rows = make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = append(Row(nil), row...)
	}

	return c
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
