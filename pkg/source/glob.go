package source

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Resolve expands a list of glob patterns into an ordered, deduplicated list
// of matching file paths. The result is sorted, so resolution is deterministic
// for a fixed filesystem state and canonical line ordering is reproducible
// across re-runs.
//
// By default a resolution that matches zero files is an error (*NoFilesError).
// Callers that want an empty input set to mean an empty result must pass
// allowEmpty explicitly.
func Resolve(patterns []string, allowEmpty bool) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	if len(result) == 0 && !allowEmpty {
		return nil, &NoFilesError{Patterns: patterns}
	}

	// Sort for deterministic ordering
	sort.Strings(result)

	return result, nil
}
