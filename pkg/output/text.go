package output

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TextFormatter formats reports as a human-readable aligned table.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if !f.opts.Quiet {
		if err := f.formatTable(report, w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	f.formatSummary(report, w)
	return nil
}

func (f *TextFormatter) formatTable(report *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(report.Columns, "\t"))

	t := report.Table
	for i := 0; i < t.Len(); i++ {
		fmt.Fprintln(tw, strings.Join(t.Row(i), "\t"))
	}

	return tw.Flush()
}

func (f *TextFormatter) formatSummary(report *Report, w io.Writer) {
	stats := report.Stats
	fmt.Fprintf(w, "Parsed %d line(s) from %d file(s): %d matched, %d failed\n",
		stats.Lines, stats.Files, stats.Matched, stats.Failed)

	for reason, count := range stats.Reasons {
		fmt.Fprintf(w, "  %s: %d\n", reason, count)
	}

	for _, path := range stats.FileErrors {
		fmt.Fprintf(w, "  unreadable: %s\n", path)
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Pattern: %s\n", report.Metadata.Pattern)
		fmt.Fprintf(w, "Duration: %s\n", stats.Duration.Round(1e6))
	}
}
