package cli

import (
	"github.com/spf13/cobra"

	"plantdash/internal/render"
)

func mapCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Plot the selected plants on a lat/lon character grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}

			return render.Map(cmd.OutOrStdout(), s.filtered, s.result.Schema,
				s.cfg.Display.MapWidth, s.cfg.Display.MapHeight)
		},
	}
}
