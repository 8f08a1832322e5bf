// Package engine orchestrates a parse run: file resolution, parallel batch
// matching, the error policy, and table assembly.
package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/zhiyong9654/data-parser/pkg/match"
	"github.com/zhiyong9654/data-parser/pkg/table"
)

// DefaultBatchSize is the number of lines dispatched to a worker at once.
// Batching amortizes scheduling overhead; the default balances latency
// against the memory held by in-flight batches.
const DefaultBatchSize = 256

// Options tunes a parse run. Zero values select the defaults.
type Options struct {
	// Workers is the size of the worker pool. Defaults to the host core count.
	Workers int

	// BatchSize is the number of lines per dispatched batch.
	BatchSize int

	// Unordered trades canonical row ordering for throughput. Rows appear in
	// completion order instead of file-then-line order. Opt-in; the default
	// is always canonical order.
	Unordered bool

	// AllowEmpty treats a glob that matches zero files as an empty table
	// instead of an error.
	AllowEmpty bool

	// MaxRows caps the assembled table. Exceeding it fails the run with
	// *table.TooLargeError. Zero means unlimited.
	MaxRows int
}

// Config describes one parse invocation. It is validated eagerly by New,
// before any file I/O.
type Config struct {
	// Patterns is one or more glob patterns selecting input files.
	Patterns []string

	// Regex is the pattern applied to each line. Its capture groups map to
	// Columns in declaration order.
	Regex string

	// Columns names the output columns. Length must equal the capture-group
	// count of Regex.
	Columns []string

	// Policy selects the per-line failure handling. Defaults to raise.
	Policy Policy

	// Backend selects the execution substrate. Defaults to "local".
	Backend string

	Options Options
}

// Backend is an execution substrate for a parse run. The shipped
// implementation is Local; a distributed substrate plugs in behind the same
// contract without engine changes.
type Backend interface {
	// Name identifies the backend.
	Name() string

	// Resolve expands glob patterns into an ordered, deduplicated file list.
	Resolve(ctx context.Context, patterns []string, allowEmpty bool) ([]string, error)

	// Run executes the job and assembles the result.
	Run(ctx context.Context, job *Job) (*table.Table, *Stats, error)
}

// Job is a fully validated unit of work handed to a backend.
type Job struct {
	Files   []string
	Pattern *match.Pattern
	Policy  Policy
	Options Options
}

// Engine runs parse invocations for one validated configuration.
type Engine struct {
	cfg     Config
	pattern *match.Pattern
	backend Backend
}

// New validates cfg and returns an Engine. All configuration errors (empty
// pattern, group/column arity mismatch, unknown policy or backend) surface
// here, before any file is opened.
func New(cfg Config) (*Engine, error) {
	if len(cfg.Patterns) == 0 {
		return nil, &ConfigError{Field: "patterns", Err: errors.New("at least one path pattern is required")}
	}

	pattern, err := match.Compile(cfg.Regex, cfg.Columns)
	if err != nil {
		return nil, &ConfigError{Field: "regex", Err: err}
	}

	if cfg.Policy == "" {
		cfg.Policy = PolicyRaise
	}
	if _, err := ParsePolicy(string(cfg.Policy)); err != nil {
		return nil, &ConfigError{Field: "on_error", Err: err}
	}

	if cfg.Options.Workers <= 0 {
		cfg.Options.Workers = runtime.NumCPU()
	}
	if cfg.Options.BatchSize <= 0 {
		cfg.Options.BatchSize = DefaultBatchSize
	}

	backend, err := newBackend(cfg.Backend)
	if err != nil {
		return nil, &ConfigError{Field: "backend", Err: err}
	}

	return &Engine{
		cfg:     cfg,
		pattern: pattern,
		backend: backend,
	}, nil
}

// Pattern returns the compiled pattern.
func (e *Engine) Pattern() *match.Pattern {
	return e.pattern
}

// Backend returns the selected backend.
func (e *Engine) Backend() Backend {
	return e.backend
}

// Run resolves the input files and executes the parse, returning the
// assembled table and run metadata. The table rows follow canonical order
// (file resolution order, then line order) unless Options.Unordered is set.
func (e *Engine) Run(ctx context.Context) (*table.Table, *Stats, error) {
	files, err := e.backend.Resolve(ctx, e.cfg.Patterns, e.cfg.Options.AllowEmpty)
	if err != nil {
		return nil, nil, err
	}

	job := &Job{
		Files:   files,
		Pattern: e.pattern,
		Policy:  e.cfg.Policy,
		Options: e.cfg.Options,
	}

	return e.backend.Run(ctx, job)
}

func newBackend(name string) (Backend, error) {
	switch name {
	case "", "local":
		return NewLocal(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (only \"local\" is built in)", name)
	}
}
