package source

import (
	"fmt"
	"strings"
)

// NoFilesError is returned when glob resolution produces zero files and the
// caller did not opt into accepting an empty input set.
type NoFilesError struct {
	Patterns []string
}

func (e *NoFilesError) Error() string {
	return fmt.Sprintf("no files matched pattern(s): %s", strings.Join(e.Patterns, ", "))
}

// ReadError reports an I/O failure on a single resolved file. It is distinct
// from NoFilesError: the file existed at resolution time but could not be
// opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
