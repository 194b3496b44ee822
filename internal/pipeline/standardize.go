package pipeline

import (
	"strconv"
	"strings"

	"plantdash/internal/table"
)

// Standardize normalizes the raw table in place and returns it:
// column names are trimmed, a leading anonymous index column is dropped,
// latitude/longitude are case-normalized or derived from a combined
// Coordinates column, and a total-capacity column is derived. Running it
// again on its own output changes nothing.
func Standardize(t *table.Table) *table.Table {
	trimColumnNames(t)
	dropIndexColumn(t)
	normalizeLatLon(t)
	deriveLatLon(t)
	deriveTotalCapacity(t)

	return t
}

// trimColumnNames strips surrounding whitespace from every column name.
// A trim that would collide with an existing column keeps the raw name.
func trimColumnNames(t *table.Table) {
	for _, name := range t.Columns() {
		trimmed := strings.TrimSpace(name)
		if trimmed != name {
			_ = t.Rename(name, trimmed)
		}
	}
}

// dropIndexColumn removes the first column when it is the anonymous index
// some export formats emit.
func dropIndexColumn(t *table.Table) {
	cols := t.Columns()
	if len(cols) == 0 {
		return
	}

	first := cols[0]
	if first == "" || strings.HasPrefix(strings.ToLower(first), "unnamed") {
		t.Drop(first)
	}
}

// normalizeLatLon lowercases literally-named Latitude/Longitude columns,
// never overwriting an existing lowercase column.
func normalizeLatLon(t *table.Table) {
	if t.Has(ColRawLatitude) && !t.Has(ColLatitude) {
		_ = t.Rename(ColRawLatitude, ColLatitude)
	}

	if t.Has(ColRawLongitude) && !t.Has(ColLongitude) {
		_ = t.Rename(ColRawLongitude, ColLongitude)
	}
}

// deriveLatLon splits a combined Coordinates column ("41.09, 20.02") into
// latitude/longitude, populating only whichever of the two is absent.
func deriveLatLon(t *table.Table) {
	if !t.Has(ColCoordinates) || (t.Has(ColLatitude) && t.Has(ColLongitude)) {
		return
	}

	n := t.Len()
	lats := make([]table.Value, n)
	lons := make([]table.Value, n)

	for i := 0; i < n; i++ {
		lats[i], lons[i] = splitCoordinate(t.Value(i, ColCoordinates))
	}

	if !t.Has(ColLatitude) {
		_ = t.AddColumn(ColLatitude, lats)
	}

	if !t.Has(ColLongitude) {
		_ = t.AddColumn(ColLongitude, lons)
	}
}

// splitCoordinate parses a "<lat>, <lon>" string. Anything else (missing
// input, wrong part count, unparseable numbers) yields two missing values.
func splitCoordinate(v table.Value) (lat, lon table.Value) {
	if v.IsMissing() {
		return table.Missing(), table.Missing()
	}

	parts := strings.Split(v.String(), ",")
	if len(parts) != 2 {
		return table.Missing(), table.Missing()
	}

	latF, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return table.Missing(), table.Missing()
	}

	lonF, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return table.Missing(), table.Missing()
	}

	return table.Number(latF), table.Number(lonF)
}

// deriveTotalCapacity sums every capacity-like column row-wise into the
// derived total. A row's total is missing only when every contributing
// value is missing; a single valid value is enough to produce a sum.
func deriveTotalCapacity(t *table.Table) {
	var contributors []string

	for _, name := range t.Columns() {
		if isCapacityColumn(name) && name != ColTotalCapacity {
			contributors = append(contributors, name)
		}
	}

	if len(contributors) == 0 {
		return
	}

	n := t.Len()
	totals := make([]table.Value, n)

	for i := 0; i < n; i++ {
		var (
			sum float64
			any bool
		)

		for _, col := range contributors {
			f, ok := t.Value(i, col).Float()
			if !ok {
				continue
			}

			sum += f
			any = true
		}

		if any {
			totals[i] = table.Number(sum)
		} else {
			totals[i] = table.Missing()
		}
	}

	_ = t.Put(ColTotalCapacity, totals)
}
