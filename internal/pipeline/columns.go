// Package pipeline cleans the raw plant table: column standardization,
// duplicate aggregation, and schema detection. The output is one row per
// physical plant.
package pipeline

import "strings"

// Semantic column names the pipeline recognizes in the input.
const (
	ColPlantID       = "Plant ID"
	ColPlantName     = "Plant name (English)"
	ColOwner         = "Owner"
	ColCountry       = "Country/Area"
	ColRegion        = "Region"
	ColLocation      = "Location address"
	ColCoordinates   = "Coordinates"
	ColRawLatitude   = "Latitude"
	ColRawLongitude  = "Longitude"
	ColLatitude      = "latitude"
	ColLongitude     = "longitude"
	ColWorkforce     = "Workforce size"
	ColAnnouncedDate = "Announced date"
	ColStartDate     = "Start date"

	// ColTotalCapacity is derived by summing every capacity-like column.
	// Unit: thousand tonnes per annum.
	ColTotalCapacity = "Total capacity (ttpa)"
)

// isCapacityColumn reports whether a column name denotes a capacity figure.
func isCapacityColumn(name string) bool {
	return strings.Contains(strings.ToLower(name), "capacity")
}
