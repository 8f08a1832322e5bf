package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhiyong9654/data-parser/pkg/config"
	"github.com/zhiyong9654/data-parser/pkg/source"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <job-file>",
		Short: "Validate a job file",
		Long: `Validate a data-parser job file without parsing any logs.

Checks:
  - YAML syntax
  - Required fields
  - Regex pattern validity
  - Capture-group count against column names
  - Source file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	jobPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", jobPath)

	job, err := config.Load(ctx, jobPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nJob valid!\n")
	fmt.Printf("  Sources:  %d pattern(s)\n", len(job.Sources))
	fmt.Printf("  Columns:  %d\n", len(job.Columns))
	fmt.Printf("  On error: %s\n", job.OnError)

	// Check if sources exist (warnings only)
	files, err := source.Resolve(job.Sources, true)
	if err != nil {
		fmt.Printf("\nWarning: Error expanding source patterns: %v\n", err)
	} else if len(files) == 0 {
		fmt.Printf("\nWarning: No files match source patterns\n")
	} else {
		fmt.Printf("\nFiles matched: %d\n", len(files))
		for _, f := range files {
			fmt.Printf("  - %s\n", f)
		}
	}

	return nil
}
