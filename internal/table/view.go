package table

import "sort"

// View is a read-only subset of a table's rows. Filtering returns a new
// View over the same backing table; the table itself is never mutated.
type View struct {
	table *Table
	rows  []int
}

// Len returns the number of rows in the view.
func (v View) Len() int {
	return len(v.rows)
}

// Columns returns the backing table's column names in order.
func (v View) Columns() []string {
	return v.table.Columns()
}

// Has reports whether the backing table has a column.
func (v View) Has(name string) bool {
	return v.table.Has(name)
}

// Value returns the cell at view-relative row i.
func (v View) Value(i int, column string) Value {
	if i < 0 || i >= len(v.rows) {
		return Missing()
	}

	return v.table.Value(v.rows[i], column)
}

// Filter returns the sub-view of rows for which keep returns true.
// The predicate receives view-relative indices.
func (v View) Filter(keep func(i int) bool) View {
	var rows []int

	for i := range v.rows {
		if keep(i) {
			rows = append(rows, v.rows[i])
		}
	}

	return View{table: v.table, rows: rows}
}

// FilterIn keeps rows whose column value renders to one of the given
// strings. Missing values never match.
func (v View) FilterIn(column string, allowed []string) View {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}

	return v.Filter(func(i int) bool {
		val := v.Value(i, column)
		if val.IsMissing() {
			return false
		}

		return set[val.String()]
	})
}

// FilterRange keeps rows whose column coerces to a number within
// [lo, hi]. Values that fail coercion are excluded.
func (v View) FilterRange(column string, lo, hi float64) View {
	return v.Filter(func(i int) bool {
		f, ok := v.Value(i, column).Float()
		if !ok {
			return false
		}

		return f >= lo && f <= hi
	})
}

// Distinct returns the sorted distinct non-missing display values of a
// column. Used to build filter option lists.
func (v View) Distinct(column string) []string {
	seen := make(map[string]bool)

	var out []string

	for i := range v.rows {
		val := v.Value(i, column)
		if val.IsMissing() {
			continue
		}

		s := val.String()
		if !seen[s] {
			seen[s] = true

			out = append(out, s)
		}
	}

	sort.Strings(out)

	return out
}

// Sum adds the numeric values of a column, skipping values that are
// missing or fail coercion. ok is false when no value contributed.
func (v View) Sum(column string) (total float64, ok bool) {
	for i := range v.rows {
		f, valid := v.Value(i, column).Float()
		if !valid {
			continue
		}

		total += f
		ok = true
	}

	return total, ok
}

// Max returns the maximum numeric value of a column, skipping values
// that are missing or fail coercion. ok is false when no value contributed.
func (v View) Max(column string) (maxVal float64, ok bool) {
	for i := range v.rows {
		f, valid := v.Value(i, column).Float()
		if !valid {
			continue
		}

		if !ok || f > maxVal {
			maxVal = f
		}

		ok = true
	}

	return maxVal, ok
}

// CountDistinct counts distinct non-missing display values of a column.
func (v View) CountDistinct(column string) int {
	return len(v.Distinct(column))
}
