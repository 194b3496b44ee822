package cli

import (
	"github.com/spf13/cobra"

	"plantdash/internal/pipeline"
	"plantdash/internal/render"
)

// displayColumns is the preferred column order for row display; columns
// the dataset lacks are skipped.
var displayColumns = []string{
	pipeline.ColPlantID,
	pipeline.ColPlantName,
	pipeline.ColOwner,
	pipeline.ColCountry,
	pipeline.ColRegion,
	pipeline.ColTotalCapacity,
	pipeline.ColWorkforce,
	pipeline.ColLatitude,
	pipeline.ColLongitude,
}

func tableCmd(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the selected plants as an aligned table",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}

			columns := render.DefaultColumns(s.filtered, displayColumns)
			if all {
				columns = nil
			}

			return render.Table(cmd.OutOrStdout(), s.filtered, columns, s.rowLimit(opts))
		},
	}

	cmd.Flags().BoolVar(&all, "all-columns", false, "Show every column instead of the default subset")

	return cmd
}
