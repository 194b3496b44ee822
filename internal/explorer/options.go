package explorer

import (
	"plantdash/internal/pipeline"
	"plantdash/internal/table"
)

// Options lists the selectable filter values the table actually contains,
// for building pick lists. Absent columns yield empty lists.
type Options struct {
	Owners    []string
	Regions   []string
	Countries []string

	// Capacity bounds over the whole view; HasCapacity is false when the
	// table has no capacity column or every value is missing.
	HasCapacity bool
	CapacityMin float64
	CapacityMax float64
}

// ListOptions computes the filter options for a view.
func ListOptions(v table.View, s pipeline.Schema) Options {
	var o Options

	if s.HasOwner {
		o.Owners = v.Distinct(pipeline.ColOwner)
	}

	if s.HasRegion {
		o.Regions = v.Distinct(pipeline.ColRegion)
	}

	if s.HasCountry {
		o.Countries = v.Distinct(pipeline.ColCountry)
	}

	if s.HasCapacity {
		minV, okMin := minOf(v, pipeline.ColTotalCapacity)
		maxV, okMax := v.Max(pipeline.ColTotalCapacity)

		if okMin && okMax {
			o.HasCapacity = true
			// The capacity slider never goes below zero.
			o.CapacityMin = max(minV, 0)
			o.CapacityMax = max(maxV, 0)
		}
	}

	return o
}

func minOf(v table.View, column string) (minVal float64, ok bool) {
	for i := 0; i < v.Len(); i++ {
		f, valid := v.Value(i, column).Float()
		if !valid {
			continue
		}

		if !ok || f < minVal {
			minVal = f
		}

		ok = true
	}

	return minVal, ok
}
