package match

import (
	"unicode/utf8"

	"github.com/coregx/coregex"
)

// Reason classifies why a line failed to produce column values.
type Reason string

const (
	// ReasonNoMatch means the pattern did not match the line.
	ReasonNoMatch Reason = "no_match"

	// ReasonDecode means the line is not valid UTF-8.
	ReasonDecode Reason = "decode_error"

	// ReasonSchema means the match produced a group count that disagrees with
	// the configured columns. Compile validation makes this unreachable, but
	// it is guarded anyway.
	ReasonSchema Reason = "schema_mismatch"

	// ReasonWorker marks lines lost to a crashed worker batch.
	ReasonWorker Reason = "worker_failure"
)

// Result is the outcome of matching one line: either captured values in group
// declaration order, or a failure reason.
type Result struct {
	Values []string
	Reason Reason
}

// OK reports whether the line matched.
func (r Result) OK() bool {
	return r.Reason == ""
}

// Match applies the pattern to a single line. It is pure and never panics on
// malformed input: undecodable lines become ReasonDecode failures.
//
// Matching uses search semantics (the pattern may match anywhere in the line;
// anchor it explicitly for full-line matches). Optional groups that did not
// participate in the match yield the empty-string sentinel, never a null.
func (p *Pattern) Match(text string) Result {
	if !utf8.ValidString(text) {
		return Result{Reason: ReasonDecode}
	}

	if p.pre != nil {
		if pre, _ := p.pre.Get().(*coregex.Regexp); pre != nil {
			hit := pre.MatchString(text)
			p.pre.Put(pre)
			if !hit {
				return Result{Reason: ReasonNoMatch}
			}
		}
	}

	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return Result{Reason: ReasonNoMatch}
	}

	if len(m)-1 != len(p.columns) {
		return Result{Reason: ReasonSchema}
	}

	return Result{Values: m[1:]}
}
