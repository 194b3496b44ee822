// Package cli implements the plantdash commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"plantdash/internal/config"
	"plantdash/internal/explorer"
	"plantdash/internal/logger"
	"plantdash/internal/pipeline"
	"plantdash/internal/table"
)

// options collects the flags shared by every subcommand.
type options struct {
	configPath  string
	dataPath    string
	logLevel    string
	owners      []string
	regions     []string
	countries   []string
	minCapacity float64
	maxCapacity float64
	limit       int
}

// NewRootCmd builds the plantdash command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "plantdash",
		Short: "Explore industrial plants, capacity, and geography from a CSV dataset",
		Long: `plantdash loads a flat CSV of industrial plants, cleans and deduplicates
it into one row per plant, and shows filterable summaries, tables, and a
coordinate map in the terminal.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to YAML config file (optional)")
	pf.StringVar(&opts.dataPath, "data", "", "Path to the plants CSV (overrides config)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringSliceVar(&opts.owners, "owner", nil, "Filter by owner (repeatable)")
	pf.StringSliceVar(&opts.regions, "region", nil, "Filter by region (repeatable)")
	pf.StringSliceVar(&opts.countries, "country", nil, "Filter by country (repeatable)")
	pf.Float64Var(&opts.minCapacity, "min-capacity", 0, "Minimum total capacity (ttpa)")
	pf.Float64Var(&opts.maxCapacity, "max-capacity", 0, "Maximum total capacity (ttpa)")
	pf.IntVar(&opts.limit, "limit", 0, "Maximum table rows to print (0 = config default)")

	root.AddCommand(summaryCmd(opts))
	root.AddCommand(tableCmd(opts))
	root.AddCommand(mapCmd(opts))
	root.AddCommand(columnsCmd(opts))

	return root
}

// session is the loaded state every subcommand works from: config, the
// cleaned table, and the filtered view.
type session struct {
	cfg      *config.Config
	log      *logger.Logger
	result   *pipeline.Result
	filtered table.View
}

// loadSession resolves config, runs the pipeline, and applies filters.
// A missing input file aborts here, before anything is rendered.
func loadSession(cmd *cobra.Command, opts *options) (*session, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if opts.dataPath != "" {
		cfg.Dataset.Path = opts.dataPath
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	loader := pipeline.NewLoader(pipeline.New(log), log)

	result, err := loader.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}

	log.Debug("dataset loaded", "path", cfg.Dataset.Path, "plants", result.Table.Len())

	filters := mergeFilters(cmd, opts, cfg)
	filtered := filters.Apply(result.Table.View(), result.Schema)

	return &session{cfg: cfg, log: log, result: result, filtered: filtered}, nil
}

// mergeFilters layers command-line filters over config defaults: value
// lists replace when given, capacity bounds replace when the flag was set.
func mergeFilters(cmd *cobra.Command, opts *options, cfg *config.Config) explorer.Filters {
	f := explorer.Filters{
		Owners:      cfg.Filters.Owners,
		Regions:     cfg.Filters.Regions,
		Countries:   cfg.Filters.Countries,
		MinCapacity: cfg.Filters.MinCapacity,
		MaxCapacity: cfg.Filters.MaxCapacity,
	}

	if len(opts.owners) > 0 {
		f.Owners = opts.owners
	}

	if len(opts.regions) > 0 {
		f.Regions = opts.regions
	}

	if len(opts.countries) > 0 {
		f.Countries = opts.countries
	}

	if cmd.Flags().Changed("min-capacity") {
		v := opts.minCapacity
		f.MinCapacity = &v
	}

	if cmd.Flags().Changed("max-capacity") {
		v := opts.maxCapacity
		f.MaxCapacity = &v
	}

	return f
}

// rowLimit resolves the effective table row limit.
func (s *session) rowLimit(opts *options) int {
	if opts.limit > 0 {
		return opts.limit
	}

	return s.cfg.Display.MaxRows
}
