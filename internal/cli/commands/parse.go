package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhiyong9654/data-parser/pkg/config"
	"github.com/zhiyong9654/data-parser/pkg/engine"
	"github.com/zhiyong9654/data-parser/pkg/output"
	"github.com/zhiyong9654/data-parser/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Paths      []string
	Regex      string
	Columns    []string
	OnError    string
	Backend    string
	Workers    int
	BatchSize  int
	Unordered  bool
	AllowEmpty bool
	MaxRows    int
	Output     string
	Verbose    bool
	Quiet      bool

	// Webhook options
	WebhookURL   string
	WebhookToken string
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [job-file]",
		Short: "Parse log files into a table",
		Long: `Parse log files into a table by applying a regular expression to each line.

Each capture group of the expression becomes one column. The job can be given
as a YAML file, or entirely through flags:

  data-parser parse --path 'logs/*.log' --regex '^(\S+) (\d+)$' --columns name,value

Error policies (--on-error):
  raise    abort on the first line that fails to parse (default)
  skip     drop failing lines; the skipped count is reported
  include  keep failing lines as rows with a diagnostic column

Exit codes:
  0 - All lines parsed
  1 - Some lines failed to parse (skip/include policy)
  2 - Configuration or runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	// Job flags
	cmd.Flags().StringSliceVar(&opts.Paths, "path", nil, "Glob pattern for input files (can be repeated)")
	cmd.Flags().StringVar(&opts.Regex, "regex", "", "Regular expression with capture groups")
	cmd.Flags().StringSliceVar(&opts.Columns, "columns", nil, "Column names, one per capture group")
	cmd.Flags().StringVar(&opts.OnError, "on-error", "", "Failure policy (raise|skip|include)")
	cmd.Flags().StringVar(&opts.Backend, "backend", "", "Execution backend (local)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Worker pool size (default: host core count)")
	cmd.Flags().IntVar(&opts.BatchSize, "batch-size", 0, "Lines per dispatched batch")
	cmd.Flags().BoolVar(&opts.Unordered, "unordered", false, "Allow completion-order rows for throughput")
	cmd.Flags().BoolVar(&opts.AllowEmpty, "allow-empty", false, "Treat zero matched files as an empty table")
	cmd.Flags().IntVar(&opts.MaxRows, "max-rows", 0, "Maximum result rows (0 = unlimited)")

	// Output flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json|csv)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include run metadata in the output")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no rows")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	job, err := buildJob(ctx, args, opts)
	if err != nil {
		return err
	}

	eng, err := engine.New(job.EngineConfig())
	if err != nil {
		return err
	}

	tbl, stats, err := eng.Run(ctx)
	if err != nil {
		return err
	}

	report := output.NewReport(tbl, stats, output.Metadata{
		Sources:  job.Sources,
		Pattern:  job.Pattern,
		ParsedAt: time.Now(),
	})

	formatter, err := output.NewFormatter(job.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	sendWebhooks(ctx, job, report)

	if !stats.Clean() {
		ExitCode = 1
	}
	return nil
}

// buildJob assembles the job from a job file, flags, or both. Flags win over
// file values.
func buildJob(ctx context.Context, args []string, opts *ParseOptions) (*config.Job, error) {
	var job *config.Job

	if len(args) == 1 {
		loaded, err := config.Load(ctx, args[0])
		if err != nil {
			return nil, err
		}
		job = loaded
	} else {
		job = config.DefaultJob()
	}

	if len(opts.Paths) > 0 {
		job.Sources = opts.Paths
	}
	if opts.Regex != "" {
		job.Pattern = opts.Regex
	}
	if len(opts.Columns) > 0 {
		job.Columns = opts.Columns
	}
	if opts.OnError != "" {
		job.OnError = opts.OnError
	}
	if opts.Backend != "" {
		job.Backend = opts.Backend
	}
	if opts.Workers > 0 {
		job.Workers = opts.Workers
	}
	if opts.BatchSize > 0 {
		job.BatchSize = opts.BatchSize
	}
	if opts.Unordered {
		job.Unordered = true
	}
	if opts.AllowEmpty {
		job.AllowEmpty = true
	}
	if opts.MaxRows > 0 {
		job.MaxRows = opts.MaxRows
	}
	if opts.Output != "" {
		job.Output = opts.Output
	}
	if opts.WebhookURL != "" {
		job.Webhooks = append(job.Webhooks, config.WebhookConfig{
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: config.WebhookTriggerAlways,
		})
	}

	if err := config.Validate(job); err != nil {
		return nil, err
	}

	return job, nil
}

// sendWebhooks delivers the report to each configured endpoint. Webhook
// failures are reported but never change the parse result.
func sendWebhooks(ctx context.Context, job *config.Job, report *output.Report) {
	var client *webhook.Client

	for _, wh := range job.Webhooks {
		switch wh.Trigger {
		case config.WebhookTriggerNever:
			continue
		case config.WebhookTriggerOnFailures:
			if report.Stats.Clean() {
				continue
			}
		}

		if client == nil {
			client = webhook.NewClient()
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}
		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: delivered (%d)\n", name, resp.StatusCode)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed: %v\n", name, resp.Error)
		}
	}
}
