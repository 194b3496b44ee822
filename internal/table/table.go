package table

import (
	"errors"
	"fmt"
)

// Table construction errors.
var (
	ErrLengthMismatch = errors.New("column length does not match table row count")
	ErrDuplicateName  = errors.New("column already exists")
	ErrUnknownColumn  = errors.New("no such column")
)

// Table holds equal-length columns of values in a stable order. Once the
// pipeline has produced a table it is treated as read-only; all filtering
// goes through View.
type Table struct {
	cols []string
	data map[string][]Value
	rows int
}

// New creates an empty table.
func New() *Table {
	return &Table{data: make(map[string][]Value)}
}

// AddColumn appends a named column. The first column fixes the row count.
func (t *Table) AddColumn(name string, values []Value) error {
	if _, exists := t.data[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	if len(t.cols) > 0 && len(values) != t.rows {
		return fmt.Errorf("%w: %q has %d values, want %d", ErrLengthMismatch, name, len(values), t.rows)
	}

	if len(t.cols) == 0 {
		t.rows = len(values)
	}

	t.cols = append(t.cols, name)
	t.data[name] = values

	return nil
}

// Put sets a named column, replacing an existing column in place or
// appending a new one. Derived columns are written through here so that
// re-deriving them is idempotent.
func (t *Table) Put(name string, values []Value) error {
	if _, exists := t.data[name]; exists {
		if len(values) != t.rows {
			return fmt.Errorf("%w: %q has %d values, want %d", ErrLengthMismatch, name, len(values), t.rows)
		}

		t.data[name] = values

		return nil
	}

	return t.AddColumn(name, values)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)

	return out
}

// Has reports whether a column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.data[name]

	return ok
}

// Value returns the cell at (row, column). Unknown columns and
// out-of-range rows read as missing.
func (t *Table) Value(row int, column string) Value {
	col, ok := t.data[column]
	if !ok || row < 0 || row >= len(col) {
		return Missing()
	}

	return col[row]
}

// Rename changes a column's name in place, keeping its position.
func (t *Table) Rename(from, to string) error {
	col, ok := t.data[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, from)
	}

	if _, exists := t.data[to]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, to)
	}

	delete(t.data, from)
	t.data[to] = col

	for i, c := range t.cols {
		if c == from {
			t.cols[i] = to

			break
		}
	}

	return nil
}

// Drop removes a column. Dropping an unknown column is a no-op.
func (t *Table) Drop(name string) {
	if _, ok := t.data[name]; !ok {
		return
	}

	delete(t.data, name)

	for i, c := range t.cols {
		if c == name {
			t.cols = append(t.cols[:i], t.cols[i+1:]...)

			break
		}
	}
}

// View returns a read-only view over every row.
func (t *Table) View() View {
	idx := make([]int, t.rows)
	for i := range idx {
		idx[i] = i
	}

	return View{table: t, rows: idx}
}
