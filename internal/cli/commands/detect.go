package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zhiyong9654/data-parser/pkg/detect"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	SampleSize int
	ShowJob    bool
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <log-file>",
		Short: "Suggest a parse pattern for a log file",
		Long: `Sample a log file and score it against a catalog of well-known log formats.

The best match's pattern and column names can be used directly in a parse job.
Use --job to print a ready-to-edit job file for the best match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.SampleSize, "sample-size", 100, "Number of lines to sample")
	cmd.Flags().BoolVar(&opts.ShowJob, "job", false, "Print a job file for the best match")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	logPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d := detect.New(detect.WithSampleSize(opts.SampleSize))
	result, err := d.DetectFromFile(ctx, logPath)
	if err != nil {
		return fmt.Errorf("detecting format: %w", err)
	}

	if len(result.Matches) == 0 {
		fmt.Printf("No known format matched (%d lines sampled).\n", result.SampledLines)
		ExitCode = 1
		return nil
	}

	fmt.Printf("Sampled %d line(s) from %s\n\n", result.SampledLines, logPath)
	for i, m := range result.Matches {
		fmt.Printf("%d. %s (%.0f%% of sample, %d lines)\n", i+1, m.Format.Name, m.Confidence*100, m.MatchCount)
		fmt.Printf("   %s\n", m.Format.Description)
		fmt.Printf("   pattern: %s\n", m.Format.PatternStr)
		fmt.Printf("   columns: %v\n", m.Format.Columns)
		fmt.Printf("   example: %s\n\n", m.SampleLine)
	}

	if opts.ShowJob {
		best := result.Matches[0].Format
		job := map[string]any{
			"sources": []string{logPath},
			"pattern": best.PatternStr,
			"columns": best.Columns,
		}
		data, err := yaml.Marshal(job)
		if err != nil {
			return err
		}
		fmt.Printf("---\n%s", data)
	}

	return nil
}
