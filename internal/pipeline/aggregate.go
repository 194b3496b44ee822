package pipeline

import (
	"strings"

	"plantdash/internal/logger"
	"plantdash/internal/table"
)

// groupKeySeparator joins per-column group tokens. Unit separator, so
// real field text cannot collide with the composite key.
const groupKeySeparator = "\x1f"

// compositeKeyColumns are tried, in order, when no plant identifier
// column exists.
var compositeKeyColumns = []string{ColPlantName, ColOwner, ColLatitude, ColLongitude, ColCountry}

// SelectGroupKey picks the grouping key columns: the plant identifier when
// present, otherwise whichever composite identity columns exist, otherwise
// the first column alone. The degenerate last case can over-merge
// unrelated rows, so callers should warn when degenerate is true.
func SelectGroupKey(t *table.Table) (key []string, degenerate bool) {
	if t.Has(ColPlantID) {
		return []string{ColPlantID}, false
	}

	for _, c := range compositeKeyColumns {
		if t.Has(c) {
			key = append(key, c)
		}
	}

	if len(key) > 0 {
		return key, false
	}

	cols := t.Columns()
	if len(cols) == 0 {
		return nil, false
	}

	return cols[:1], true
}

// Aggregate collapses rows describing the same plant into one output row
// per grouping key. Capacity columns are summed (all-missing stays
// missing), workforce takes the group maximum, and every other column
// keeps the first non-missing value in input order. Rows with missing key
// values form their own groups rather than being dropped.
func Aggregate(t *table.Table, log *logger.Logger) *table.Table {
	key, degenerate := SelectGroupKey(t)
	if degenerate && log != nil {
		log.Warn("no identifier or identity columns found, grouping by first column only",
			"column", key[0])
	}

	groups := groupRows(t, key)
	cols := t.Columns()
	out := table.New()

	for _, name := range cols {
		values := make([]table.Value, len(groups))

		for gi, rows := range groups {
			values[gi] = aggregateColumn(t, name, rows, key)
		}

		_ = out.AddColumn(name, values)
	}

	return out
}

// groupRows buckets row indices by composite key token, preserving the
// input order of first appearance.
func groupRows(t *table.Table, key []string) [][]int {
	index := make(map[string]int)

	var groups [][]int

	for row := 0; row < t.Len(); row++ {
		var parts []string
		for _, col := range key {
			parts = append(parts, t.Value(row, col).GroupToken())
		}

		token := strings.Join(parts, groupKeySeparator)

		gi, seen := index[token]
		if !seen {
			gi = len(groups)
			index[token] = gi

			groups = append(groups, nil)
		}

		groups[gi] = append(groups[gi], row)
	}

	return groups
}

// aggregateColumn reduces one column over one group of row indices.
func aggregateColumn(t *table.Table, name string, rows []int, key []string) table.Value {
	for _, k := range key {
		if name == k {
			return t.Value(rows[0], name)
		}
	}

	switch {
	case name == ColWorkforce:
		return maxValue(t, name, rows)
	case isCapacityColumn(name):
		return sumValues(t, name, rows)
	default:
		return firstValue(t, name, rows)
	}
}

// sumValues adds a column over a group; missing only when nothing
// contributed.
func sumValues(t *table.Table, name string, rows []int) table.Value {
	var (
		sum float64
		any bool
	)

	for _, row := range rows {
		f, ok := t.Value(row, name).Float()
		if !ok {
			continue
		}

		sum += f
		any = true
	}

	if !any {
		return table.Missing()
	}

	return table.Number(sum)
}

// maxValue takes the group maximum, excluding missing values from the
// comparison.
func maxValue(t *table.Table, name string, rows []int) table.Value {
	var (
		maxF float64
		any  bool
	)

	for _, row := range rows {
		f, ok := t.Value(row, name).Float()
		if !ok {
			continue
		}

		if !any || f > maxF {
			maxF = f
		}

		any = true
	}

	if !any {
		return table.Missing()
	}

	return table.Number(maxF)
}

// firstValue returns the first non-missing value in input order, or
// missing when the whole group is missing.
func firstValue(t *table.Table, name string, rows []int) table.Value {
	for _, row := range rows {
		if v := t.Value(row, name); !v.IsMissing() {
			return v
		}
	}

	return table.Missing()
}
