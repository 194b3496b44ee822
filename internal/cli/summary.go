package cli

import (
	"github.com/spf13/cobra"

	"plantdash/internal/explorer"
	"plantdash/internal/render"
)

func summaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show headline figures for the selected plants",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}

			metrics := explorer.ComputeMetrics(s.filtered, s.result.Schema)
			render.Metrics(cmd.OutOrStdout(), metrics)

			return nil
		},
	}
}
