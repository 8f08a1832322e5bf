package engine

import "fmt"

// Policy decides what happens to lines the pattern fails to parse.
type Policy string

const (
	// PolicyRaise aborts the run on the first failure of any kind. No partial
	// table is returned.
	PolicyRaise Policy = "raise"

	// PolicySkip drops failing lines. The dropped count is reported in Stats
	// so the loss is observable.
	PolicySkip Policy = "skip"

	// PolicyInclude keeps failing lines as rows: every requested column holds
	// the empty sentinel and the diagnostic column holds the failure reason.
	PolicyInclude Policy = "include"
)

// ParsePolicy converts a policy name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyRaise, PolicySkip, PolicyInclude:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("invalid error policy %q (must be raise, skip, or include)", s)
	}
}
