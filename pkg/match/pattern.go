// Package match compiles user-supplied regular expressions and applies them to
// individual lines, mapping capture groups to named columns.
package match

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/coregx/coregex"
)

// Pattern is a compiled regular expression together with its declared column
// names. It is immutable after Compile and safe to share across workers: the
// coregex prefilter carries mutable match state, so workers borrow their own
// instance from a pool instead of sharing one.
type Pattern struct {
	expr    string
	re      *regexp.Regexp
	pre     *sync.Pool // of *coregex.Regexp; nil when expr is not coregex-compatible
	columns []string
}

// Compile compiles expr and validates that its capture-group count equals the
// number of requested columns. All validation happens here, before any line is
// processed: a per-line schema mismatch should be unreachable afterwards.
func Compile(expr string, columns []string) (*Pattern, error) {
	if expr == "" {
		return nil, errors.New("empty pattern")
	}
	if len(columns) == 0 {
		return nil, errors.New("at least one column name is required")
	}

	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		if col == "" {
			return nil, fmt.Errorf("columns[%d]: empty column name", i)
		}
		if seen[col] {
			return nil, fmt.Errorf("columns[%d]: duplicate column name %q", i, col)
		}
		seen[col] = true
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	if re.NumSubexp() != len(columns) {
		return nil, &ArityError{Groups: re.NumSubexp(), Columns: len(columns)}
	}

	p := &Pattern{
		expr:    expr,
		re:      re,
		columns: columns,
	}

	// coregex gives a cheap whole-line match check before the (slower) stdlib
	// submatch extraction. Its engines are not safe for concurrent use, so each
	// worker draws its own from a pool. Not every pattern compiles under
	// coregex; matching falls back to plain extraction when it doesn't.
	if first, err := coregex.Compile(expr); err == nil {
		pool := &sync.Pool{
			New: func() any {
				pre, err := coregex.Compile(expr)
				if err != nil {
					return nil
				}
				return pre
			},
		}
		pool.Put(first)
		p.pre = pool
	}

	return p, nil
}

// Expr returns the original pattern string.
func (p *Pattern) Expr() string {
	return p.expr
}

// Columns returns the declared column names in order.
func (p *Pattern) Columns() []string {
	cols := make([]string, len(p.columns))
	copy(cols, p.columns)
	return cols
}
