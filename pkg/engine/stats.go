package engine

import (
	"time"

	"github.com/zhiyong9654/data-parser/pkg/match"
)

// Stats is the run metadata returned alongside the table.
type Stats struct {
	// Files is the number of resolved input files.
	Files int `json:"files"`

	// Lines is the total number of lines processed.
	Lines int `json:"lines"`

	// Matched is the number of lines that parsed into a row.
	Matched int `json:"matched"`

	// Failed is the number of lines the pattern failed to parse: dropped
	// under skip, kept as diagnostic rows under include.
	Failed int `json:"failed"`

	// Reasons breaks Failed down by failure reason.
	Reasons map[match.Reason]int `json:"reasons,omitempty"`

	// FileErrors lists resolved files that could not be read. Only populated
	// under skip and include; raise aborts on the first unreadable file.
	FileErrors []string `json:"file_errors,omitempty"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration"`
}

// Clean reports whether every line parsed and every file was readable.
func (s *Stats) Clean() bool {
	return s.Failed == 0 && len(s.FileErrors) == 0
}
