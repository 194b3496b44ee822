package pipeline

import "plantdash/internal/table"

// Schema records which semantic capabilities the cleaned table supports.
// It is computed once after standardization; downstream code consults it
// instead of probing column names ad hoc.
type Schema struct {
	HasPlantID  bool
	HasName     bool
	HasOwner    bool
	HasRegion   bool
	HasCountry  bool
	HasCapacity bool
	HasLatLon   bool
}

// DetectSchema inspects a standardized table's columns.
func DetectSchema(t *table.Table) Schema {
	return Schema{
		HasPlantID:  t.Has(ColPlantID),
		HasName:     t.Has(ColPlantName),
		HasOwner:    t.Has(ColOwner),
		HasRegion:   t.Has(ColRegion),
		HasCountry:  t.Has(ColCountry),
		HasCapacity: t.Has(ColTotalCapacity),
		HasLatLon:   t.Has(ColLatitude) && t.Has(ColLongitude),
	}
}

// ColorColumn returns the column the map should color points by, in the
// same preference order the dashboard uses: region, then country, then
// owner. Empty when none exist.
func (s Schema) ColorColumn() string {
	switch {
	case s.HasRegion:
		return ColRegion
	case s.HasCountry:
		return ColCountry
	case s.HasOwner:
		return ColOwner
	default:
		return ""
	}
}
