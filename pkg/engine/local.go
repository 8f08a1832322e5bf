package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/destel/rill"

	"github.com/zhiyong9654/data-parser/pkg/match"
	"github.com/zhiyong9654/data-parser/pkg/source"
	"github.com/zhiyong9654/data-parser/pkg/table"
)

// Local runs parse jobs on an in-process worker pool. The pool lives for
// exactly one Run call: it is created at call start and torn down, including
// cancellation of in-flight batches, when the call returns.
type Local struct{}

// NewLocal creates the local backend.
func NewLocal() *Local {
	return &Local{}
}

// Name identifies the backend.
func (b *Local) Name() string {
	return "local"
}

// Resolve expands glob patterns on the local filesystem.
func (b *Local) Resolve(_ context.Context, patterns []string, allowEmpty bool) ([]string, error) {
	return source.Resolve(patterns, allowEmpty)
}

// outcome pairs a line with its match result. Keeping the line alongside the
// result preserves the canonical position and the raw text for diagnostics.
type outcome struct {
	line source.Line
	res  match.Result
}

// Run streams lines through a bounded pipeline: a single producer reads files
// in canonical order, lines are grouped into fixed-size batches, a pool of
// workers matches each batch, and a single consumer assembles the table.
// Batches are collected in canonical order unless the job opts into unordered
// output. The bounded stages give backpressure: a slow consumer stalls the
// producer instead of buffering the corpus in memory.
func (b *Local) Run(ctx context.Context, job *Job) (*table.Table, *Stats, error) {
	start := time.Now()
	parent := ctx
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	stats := &Stats{
		Files:   len(job.Files),
		Reasons: make(map[match.Reason]int),
	}

	// fileErrs is owned by the producer goroutine until done is closed.
	var fileErrs []string

	lines := make(chan rill.Try[source.Line])
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(lines)

		sc := source.NewScanner(job.Files)
		defer sc.Close()

		for {
			line, err := sc.Next(ctx)
			if err != nil {
				if err == io.EOF || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return
				}
				var rerr *source.ReadError
				if errors.As(err, &rerr) && job.Policy != PolicyRaise {
					// One unreadable file does not abort the others.
					fileErrs = append(fileErrs, rerr.Path)
					continue
				}
				select {
				case lines <- rill.Try[source.Line]{Error: err}:
				case <-ctx.Done():
				}
				return
			}

			select {
			case lines <- rill.Try[source.Line]{Value: line}:
			case <-ctx.Done():
				return
			}
		}
	}()

	batches := rill.Batch(lines, job.Options.BatchSize, -1)

	mapper := rill.OrderedMap[[]source.Line, []outcome]
	if job.Options.Unordered {
		mapper = rill.Map[[]source.Line, []outcome]
	}
	results := mapper(batches, job.Options.Workers, func(batch []source.Line) ([]outcome, error) {
		return matchBatch(job, batch)
	})

	outcomes := rill.Unbatch(results)

	columns := job.Pattern.Columns()
	if job.Policy == PolicyInclude {
		columns = append(columns, table.DiagnosticColumn)
	}
	builder := table.NewBuilder(columns, job.Options.MaxRows)

	err := rill.ForEach(outcomes, 1, func(o outcome) error {
		stats.Lines++

		if o.res.OK() {
			stats.Matched++
			row := o.res.Values
			if job.Policy == PolicyInclude {
				row = append(row, "")
			}
			return builder.Append(row)
		}

		stats.Reasons[o.res.Reason]++
		switch job.Policy {
		case PolicyRaise:
			return &LineError{
				Path:   o.line.Path,
				Line:   o.line.Number + 1,
				Text:   o.line.Text,
				Reason: o.res.Reason,
			}
		case PolicySkip:
			stats.Failed++
			return nil
		default: // PolicyInclude
			stats.Failed++
			row := make([]string, len(columns))
			row[len(row)-1] = string(o.res.Reason)
			return builder.Append(row)
		}
	})

	// Tear the pipeline down before touching producer-owned state. ForEach
	// already drains the stream in the background on early termination; the
	// cancel unblocks the scanner.
	cancel()
	<-done

	// Caller cancellation drains the pipeline silently; report it as the run's
	// error rather than returning a quietly truncated table.
	if err == nil {
		err = parent.Err()
	}
	if err != nil {
		return nil, nil, err
	}

	stats.FileErrors = fileErrs
	stats.Duration = time.Since(start)

	return builder.Table(), stats, nil
}

// matchBatch applies the pattern to every line of a batch. A panic inside the
// worker is converted into per-line worker failures so one lost batch does
// not abort the run, unless the policy is raise.
func matchBatch(job *Job, batch []source.Line) (outs []outcome, err error) {
	defer func() {
		if r := recover(); r == nil {
			return
		} else if job.Policy == PolicyRaise {
			outs = nil
			err = fmt.Errorf("worker failure: %v", r)
		} else {
			outs = make([]outcome, len(batch))
			for i, line := range batch {
				outs[i] = outcome{line: line, res: match.Result{Reason: match.ReasonWorker}}
			}
			err = nil
		}
	}()

	outs = make([]outcome, 0, len(batch))
	for _, line := range batch {
		outs = append(outs, outcome{line: line, res: job.Pattern.Match(line.Text)})
	}
	return outs, nil
}
