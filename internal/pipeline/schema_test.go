package pipeline

import (
	"testing"

	"plantdash/internal/table"
)

func TestDetectSchema(t *testing.T) {
	tbl := table.New()
	mustAdd(t, tbl, ColOwner, []table.Value{table.Text("Acme")})
	mustAdd(t, tbl, ColCountry, []table.Value{table.Text("DE")})
	mustAdd(t, tbl, ColLatitude, []table.Value{table.Number(1)})

	s := DetectSchema(tbl)

	if !s.HasOwner || !s.HasCountry {
		t.Error("owner/country capabilities not detected")
	}

	if s.HasRegion || s.HasCapacity || s.HasPlantID {
		t.Error("absent columns reported as present")
	}

	// Latitude alone is not enough for coordinates.
	if s.HasLatLon {
		t.Error("HasLatLon requires both latitude and longitude")
	}
}

func TestSchema_ColorColumn(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		want   string
	}{
		{"region first", Schema{HasRegion: true, HasCountry: true, HasOwner: true}, ColRegion},
		{"country next", Schema{HasCountry: true, HasOwner: true}, ColCountry},
		{"owner last", Schema{HasOwner: true}, ColOwner},
		{"none", Schema{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schema.ColorColumn(); got != tt.want {
				t.Errorf("ColorColumn() = %q, want %q", got, tt.want)
			}
		})
	}
}
