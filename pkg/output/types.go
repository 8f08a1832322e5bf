// Package output provides formatting for parse results.
package output

import (
	"time"

	"github.com/zhiyong9654/data-parser/pkg/engine"
	"github.com/zhiyong9654/data-parser/pkg/table"
)

// Report is the complete result of a parse run: the table plus run metadata.
type Report struct {
	// Table is the assembled tabular result.
	Table *table.Table `json:"-"`

	// Columns are the table's column names in order.
	Columns []string `json:"columns"`

	// Rows are the table rows as column-to-value records.
	Rows []map[string]string `json:"rows"`

	// Stats is the run metadata.
	Stats *engine.Stats `json:"stats"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Metadata provides context about the parse run.
type Metadata struct {
	// Sources are the glob patterns that were parsed.
	Sources []string `json:"sources"`

	// Pattern is the regular expression that was applied.
	Pattern string `json:"pattern"`

	// ParsedAt is when the run finished.
	ParsedAt time.Time `json:"parsed_at"`
}

// NewReport creates a Report from a parse result.
func NewReport(t *table.Table, stats *engine.Stats, meta Metadata) *Report {
	return &Report{
		Table:    t,
		Columns:  t.Columns(),
		Rows:     t.Records(),
		Stats:    stats,
		Metadata: meta,
	}
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose includes run metadata in the output.
	Verbose bool

	// Quiet emits the summary only, no rows.
	Quiet bool
}
