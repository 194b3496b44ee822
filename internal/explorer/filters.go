// Package explorer exposes filter, option-listing, and KPI computation
// over the cleaned plant table. Everything here operates on read-only
// views and never touches the canonical table.
package explorer

import (
	"plantdash/internal/pipeline"
	"plantdash/internal/table"
)

// Filters selects a subset of plants. Value lists match by membership
// (OR within a list), and the lists compose by AND. Empty lists and nil
// bounds select everything. Filters on columns the table lacks are
// ignored.
type Filters struct {
	Owners    []string
	Regions   []string
	Countries []string

	MinCapacity *float64
	MaxCapacity *float64
}

// IsEmpty reports whether no filter is set.
func (f Filters) IsEmpty() bool {
	return len(f.Owners) == 0 &&
		len(f.Regions) == 0 &&
		len(f.Countries) == 0 &&
		f.MinCapacity == nil &&
		f.MaxCapacity == nil
}

// Apply narrows a view to the rows matching the filters, consulting the
// schema for which columns exist.
func (f Filters) Apply(v table.View, s pipeline.Schema) table.View {
	if len(f.Owners) > 0 && s.HasOwner {
		v = v.FilterIn(pipeline.ColOwner, f.Owners)
	}

	if len(f.Regions) > 0 && s.HasRegion {
		v = v.FilterIn(pipeline.ColRegion, f.Regions)
	}

	if len(f.Countries) > 0 && s.HasCountry {
		v = v.FilterIn(pipeline.ColCountry, f.Countries)
	}

	if (f.MinCapacity != nil || f.MaxCapacity != nil) && s.HasCapacity {
		lo, hi := f.capacityBounds()
		v = v.FilterRange(pipeline.ColTotalCapacity, lo, hi)
	}

	return v
}

func (f Filters) capacityBounds() (lo, hi float64) {
	lo = 0
	hi = maxCapacityBound

	if f.MinCapacity != nil {
		lo = *f.MinCapacity
	}

	if f.MaxCapacity != nil {
		hi = *f.MaxCapacity
	}

	return lo, hi
}

// maxCapacityBound is an open upper bound for one-sided capacity filters.
const maxCapacityBound = 1e18
