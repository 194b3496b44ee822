package pipeline

import (
	"plantdash/internal/logger"
	"plantdash/internal/table"
)

// Result is the pipeline's output: the cleaned one-row-per-plant table
// and its detected schema capabilities. The table is read-only from here
// on; consumers filter through views.
type Result struct {
	Table  *table.Table
	Schema Schema
}

// Pipeline turns a raw plant table into a cleaned one.
type Pipeline struct {
	log *logger.Logger
}

// New creates a pipeline instance.
func New(log *logger.Logger) *Pipeline {
	return &Pipeline{log: log}
}

// Run standardizes columns, aggregates duplicate plant rows, and detects
// the schema. Per-value parse failures degrade to missing values; Run
// itself cannot fail.
func (p *Pipeline) Run(raw *table.Table) *Result {
	std := Standardize(raw)
	schema := DetectSchema(std)
	clean := Aggregate(std, p.log)

	if p.log != nil {
		p.log.Debug("pipeline complete",
			"rows", clean.Len(),
			"columns", len(clean.Columns()),
			"has_capacity", schema.HasCapacity,
			"has_latlon", schema.HasLatLon)
	}

	return &Result{Table: clean, Schema: schema}
}
