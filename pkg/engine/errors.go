package engine

import (
	"fmt"

	"github.com/zhiyong9654/data-parser/pkg/match"
)

// ConfigError reports an invalid parse configuration. It always surfaces
// before any log file is opened.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LineError is the error surfaced under the raise policy: the first line that
// failed to parse, with enough context to diagnose it.
type LineError struct {
	Path   string
	Line   int // 1-based
	Text   string
	Reason match.Reason
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Text)
}
