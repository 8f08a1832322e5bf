package output

import (
	"context"
	"encoding/csv"
	"io"
)

// CSVFormatter formats the table as CSV, header first. Run metadata is not
// part of CSV output.
type CSVFormatter struct {
	opts FormatOptions
}

// NewCSVFormatter creates a new CSV formatter with the given options.
func NewCSVFormatter(opts FormatOptions) *CSVFormatter {
	return &CSVFormatter{opts: opts}
}

// Name returns the format name.
func (f *CSVFormatter) Name() string {
	return "csv"
}

// Format renders the table as CSV.
func (f *CSVFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(report.Columns); err != nil {
		return err
	}

	t := report.Table
	for i := 0; i < t.Len(); i++ {
		if err := cw.Write(t.Row(i)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
