package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plantdash/internal/explorer"
)

func columnsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "Show detected schema capabilities and filter options",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			schema := s.result.Schema

			fmt.Fprintln(out, "Schema capabilities:")
			printCapability(out, "plant id", schema.HasPlantID)
			printCapability(out, "name", schema.HasName)
			printCapability(out, "owner", schema.HasOwner)
			printCapability(out, "region", schema.HasRegion)
			printCapability(out, "country", schema.HasCountry)
			printCapability(out, "capacity", schema.HasCapacity)
			printCapability(out, "coordinates", schema.HasLatLon)

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Columns:")

			for _, col := range s.result.Table.Columns() {
				fmt.Fprintf(out, "  %s\n", col)
			}

			available := explorer.ListOptions(s.result.Table.View(), schema)

			fmt.Fprintln(out)
			fmt.Fprintf(out, "Filter options: %d owners, %d regions, %d countries\n",
				len(available.Owners), len(available.Regions), len(available.Countries))

			if available.HasCapacity {
				fmt.Fprintf(out, "Capacity range: %.1f to %.1f ttpa\n",
					available.CapacityMin, available.CapacityMax)
			}

			return nil
		},
	}
}

func printCapability(out io.Writer, name string, present bool) {
	mark := color.New(color.FgRed).Sprint("absent")
	if present {
		mark = color.New(color.FgHiGreen).Sprint("present")
	}

	fmt.Fprintf(out, "  %-12s %s\n", name, mark)
}
