package explorer

import (
	"plantdash/internal/pipeline"
	"plantdash/internal/table"
)

// Metrics are the headline figures for a (possibly filtered) view.
type Metrics struct {
	Plants int
	// TotalCapacity sums the derived capacity column, thousand tonnes
	// per annum. Zero with HasCapacity=false when the column is absent.
	TotalCapacity float64
	HasCapacity   bool
	OwnerCount    int
}

// ComputeMetrics calculates the KPI block for a view.
func ComputeMetrics(v table.View, s pipeline.Schema) Metrics {
	m := Metrics{Plants: v.Len()}

	if s.HasCapacity {
		total, ok := v.Sum(pipeline.ColTotalCapacity)
		if ok {
			m.TotalCapacity = total
			m.HasCapacity = true
		}
	}

	if s.HasOwner {
		m.OwnerCount = v.CountDistinct(pipeline.ColOwner)
	}

	return m
}
