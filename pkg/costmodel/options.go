package costmodel

import (
	"io"

	log "github.com/rs/zerolog"
)

type AnalyzerOption func(a *Analyzer)

func WithTable(table *Table) AnalyzerOption {
	return func(a *Analyzer) {
		a.table = table
	}
}

func WithOutput(output io.Writer) AnalyzerOption {
	return func(a *Analyzer) {
		a.out = output
	}
}

func WithLogger(logger log.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithLimit sets the cutoff percentage for the full report. The detailed
// group views always render with no cutoff.
func WithLimit(limit float64) AnalyzerOption {
	return func(a *Analyzer) {
		a.limit = limit
	}
}

// WithGroups overrides the built-in group views.
func WithGroups(groups []Group) AnalyzerOption {
	return func(a *Analyzer) {
		a.groups = groups
	}
}
