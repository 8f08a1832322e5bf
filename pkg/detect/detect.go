// Package detect suggests parse patterns for log files by sampling lines and
// scoring them against a catalog of well-known log formats.
package detect

import (
	"bufio"
	"context"
	"sort"
	"strings"

	"github.com/zhiyong9654/data-parser/pkg/source"
)

// DetectionResult holds the result of analyzing a log sample.
type DetectionResult struct {
	// Matches lists formats that matched, sorted by confidence descending.
	Matches []FormatMatch

	// SampledLines is the number of lines sampled.
	SampledLines int
}

// FormatMatch is one candidate format with its confidence score.
type FormatMatch struct {
	Format     *Format
	Confidence float64 // 0.0 to 1.0 (fraction of sampled lines matched)
	MatchCount int
	SampleLine string // Example line that matched
}

// Detector scores log samples against a format catalog.
type Detector struct {
	formats    []*Format
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// WithFormats replaces the built-in format catalog.
func WithFormats(formats []*Format) Option {
	return func(d *Detector) {
		if len(formats) > 0 {
			d.formats = formats
		}
	}
}

// New creates a Detector with the default catalog.
func New(opts ...Option) *Detector {
	d := &Detector{
		formats:    DefaultFormats(),
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile samples a log file and returns matching formats.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	lines, err := d.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.DetectFromLines(lines), nil
}

// DetectFromLines scores a slice of log lines against the catalog.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{
		SampledLines: len(lines),
	}

	if len(lines) == 0 {
		return result
	}

	type formatStats struct {
		format     *Format
		matchCount int
		sampleLine string
	}

	stats := make(map[string]*formatStats)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		for _, format := range d.formats {
			if !format.Pattern.MatchString(line) {
				continue
			}

			key := format.Name
			if stats[key] == nil {
				stats[key] = &formatStats{
					format:     format,
					sampleLine: line,
				}
			}
			stats[key].matchCount++
		}
	}

	for _, s := range stats {
		result.Matches = append(result.Matches, FormatMatch{
			Format:     s.format,
			Confidence: float64(s.matchCount) / float64(len(lines)),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
		})
	}

	// Sort by confidence descending, then by pattern length (more specific first)
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return len(result.Matches[i].Format.PatternStr) > len(result.Matches[j].Format.PatternStr)
	})

	return result
}

// sampleFile reads up to sampleSize lines from the start of the file.
// Compressed files are sampled through the same transparent decompression as
// parsing.
func (d *Detector) sampleFile(ctx context.Context, path string) ([]string, error) {
	r, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for len(lines) < d.sampleSize && scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
