package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cayleygraph/cayley"
	"github.com/google/uuid"
)

// Result is one timed query execution.
type Result struct {
	Query    string
	Duration time.Duration
	Rows     int
	Err      error
}

// SizedResults holds the catalog results for one subsample threshold.
type SizedResults struct {
	Size    int
	Results []Result
}

// Report collects the full-graph results and the scalability series.
type Report struct {
	RunID  string
	Full   []Result
	Scaled []SizedResults
}

// Runner times the query catalog against a graph and its subsamples.
type Runner struct {
	queries []Query
	sizes   []int
	logger  *slog.Logger
}

// NewRunner creates a runner over the full catalog with the given subsample
// thresholds.
func NewRunner(sizes []int, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		queries: Catalog(),
		sizes:   sizes,
		logger:  logger,
	}
}

// Run times every query once against the full graph, then once against each
// subsample. A failing query is recorded with its error and the remaining
// queries still run; only subsample construction aborts the run.
func (r *Runner) Run(ctx context.Context, g *Graph) (*Report, error) {
	report := &Report{RunID: uuid.New().String()}

	r.logger.Info("benchmarking full graph",
		"run_id", report.RunID,
		"triples", len(g.Triples),
		"queries", len(r.queries))
	report.Full = r.runCatalog(ctx, g.Store)

	for _, size := range r.sizes {
		sub := Subsample(g.Triples, size)
		subGraph, err := NewGraph(sub)
		if err != nil {
			return nil, fmt.Errorf("build subsample graph (size %d): %w", size, err)
		}
		r.logger.Info("benchmarking subsample",
			"run_id", report.RunID,
			"size", size,
			"triples", len(sub))
		report.Scaled = append(report.Scaled, SizedResults{
			Size:    size,
			Results: r.runCatalog(ctx, subGraph.Store),
		})
	}

	return report, nil
}

func (r *Runner) runCatalog(ctx context.Context, h *cayley.Handle) []Result {
	results := make([]Result, 0, len(r.queries))
	for _, q := range r.queries {
		start := time.Now()
		rows, err := q.Eval(ctx, h)
		elapsed := time.Since(start)

		res := Result{Query: q.Name, Duration: elapsed, Rows: len(rows), Err: err}
		if err != nil {
			r.logger.Error("query failed", "query", q.Name, "error", err)
		} else {
			r.logger.Debug("query finished", "query", q.Name, "duration", elapsed, "rows", len(rows))
		}
		results = append(results, res)
	}
	return results
}

// Write prints the plain-text report.
func (rep *Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Benchmarks for full dataset (run %s):\n", rep.RunID); err != nil {
		return err
	}
	if err := writeResults(w, rep.Full); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\nScalability benchmarks:"); err != nil {
		return err
	}
	for _, sized := range rep.Scaled {
		if _, err := fmt.Fprintf(w, "Dataset size: %d records\n", sized.Size); err != nil {
			return err
		}
		if err := writeResults(w, sized.Results); err != nil {
			return err
		}
	}
	return nil
}

func writeResults(w io.Writer, results []Result) error {
	for _, res := range results {
		if res.Err != nil {
			if _, err := fmt.Fprintf(w, "  %s: FAILED: %v\n", res.Query, res.Err); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "  %s: %.4f seconds, %d rows\n",
			res.Query, res.Duration.Seconds(), res.Rows); err != nil {
			return err
		}
	}
	return nil
}
