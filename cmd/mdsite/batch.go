package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Sentinel errors for page builds.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePage    = errors.New("failed to write page")
)

// PageConverter is the part of mdsite.Converter the build needs.
type PageConverter interface {
	Convert(ctx context.Context, input mdsite.Input) (*mdsite.Page, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*mdsite.Converter)(nil)

// PageResult holds the outcome of a single page build.
type PageResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Bytes      int
	Skipped    bool // draft page not written
	Err        error
	Duration   time.Duration
}

// buildOptions are shared by every page of a build.
type buildOptions struct {
	workers int
	drafts  bool
}

// convertBatch builds pages concurrently with a fixed number of workers.
// Results are returned in job order.
func convertBatch(ctx context.Context, conv PageConverter, jobs []PageJob, opts buildOptions) []PageResult {
	if len(jobs) == 0 {
		return nil
	}

	results := make([]PageResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < resolveWorkerCount(opts.workers, len(jobs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = PageResult{InputPath: jobs[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = convertPage(ctx, conv, jobs[idx], opts)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// convertPage reads, converts and writes one page.
func convertPage(ctx context.Context, conv PageConverter, job PageJob, opts buildOptions) (result PageResult) {
	start := time.Now()
	result = PageResult{InputPath: job.InputPath, OutputPath: job.OutputPath}
	defer func() { result.Duration = time.Since(start) }()

	content, err := os.ReadFile(job.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return result
	}

	page, err := conv.Convert(ctx, mdsite.Input{Markdown: string(content), SourcePath: job.InputPath})
	if err != nil {
		result.Err = err
		return result
	}
	result.Title = page.Title

	if page.Draft && !opts.drafts {
		result.Skipped = true
		return result
	}

	if err := fileutil.WriteFileAtomic(job.OutputPath, page.HTML); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		return result
	}
	result.Bytes = len(page.HTML)
	return result
}

// ResultSummary tallies a batch.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Skipped   int
	Bytes     int64
}

// countResults tallies built, failed and skipped pages.
func countResults(results []PageResult) ResultSummary {
	var s ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Skipped:
			s.Skipped++
		default:
			s.Succeeded++
			s.Bytes += int64(r.Bytes)
		}
	}
	return s
}

// printResults writes one line per page: failures to stderr, the rest to
// stdout unless quiet. Returns the summary.
func printResults(results []PageResult, quiet, verbose bool, stdout, stderr io.Writer) ResultSummary {
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
		case quiet:
		case r.Skipped:
			fmt.Fprintf(stdout, "Skipped %s (draft)\n", r.InputPath)
		case verbose:
			fmt.Fprintf(stdout, "%s -> %s %q (%s, %v)\n", r.InputPath, r.OutputPath, r.Title,
				humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(stdout, "Created %s\n", r.OutputPath)
		}
	}
	return countResults(results)
}
