package render

import (
	"fmt"
	"io"
	"strings"

	"plantdash/internal/pipeline"
	"plantdash/internal/table"
)

// Default map grid size, chosen to fit an 80-column terminal.
const (
	DefaultMapWidth  = 72
	DefaultMapHeight = 24
)

// Map plots the view's plants on an equirectangular character grid,
// latitude +90 at the top and longitude -180 at the left. Rows without
// both coordinates are skipped, never plotted at zero. Cells holding
// several plants show the count (9+ renders as '+').
func Map(w io.Writer, v table.View, s pipeline.Schema, width, height int) error {
	if width <= 0 {
		width = DefaultMapWidth
	}

	if height <= 0 {
		height = DefaultMapHeight
	}

	if !s.HasLatLon {
		_, err := fmt.Fprintln(w, "No coordinates available to render the map.")

		return err
	}

	counts := make([]int, width*height)
	plotted := 0

	for i := 0; i < v.Len(); i++ {
		lat, okLat := v.Value(i, pipeline.ColLatitude).Float()
		lon, okLon := v.Value(i, pipeline.ColLongitude).Float()

		if !okLat || !okLon {
			continue
		}

		col, row, ok := project(lat, lon, width, height)
		if !ok {
			continue
		}

		counts[row*width+col]++
		plotted++
	}

	if plotted == 0 {
		_, err := fmt.Fprintln(w, "No coordinates available to render the map.")

		return err
	}

	border := "+" + strings.Repeat("-", width) + "+"
	if _, err := fmt.Fprintln(w, border); err != nil {
		return err
	}

	line := make([]byte, width)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			line[col] = cellChar(counts[row*width+col])
		}

		if _, err := fmt.Fprintf(w, "|%s|\n", line); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, border); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d plants plotted (lat +90..-90, lon -180..+180)\n", plotted)

	return err
}

// project maps a lat/lon pair onto the grid. Coordinates outside the
// valid ranges are rejected rather than clamped onto the border.
func project(lat, lon float64, width, height int) (col, row int, ok bool) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}

	col = int((lon + 180) / 360 * float64(width))
	if col >= width {
		col = width - 1
	}

	row = int((90 - lat) / 180 * float64(height))
	if row >= height {
		row = height - 1
	}

	return col, row, true
}

func cellChar(count int) byte {
	switch {
	case count == 0:
		return ' '
	case count == 1:
		return '*'
	case count <= 9:
		return byte('0' + count)
	default:
		return '+'
	}
}
