// Package batch extracts links from several page URLs concurrently.
package batch

import (
	"context"

	"github.com/fwojciec/linkx"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of extractions run at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 4

// Limiter throttles requests per page URL.
type Limiter interface {
	Wait(ctx context.Context, rawURL string) error
}

// Result is the outcome of extracting one URL.
type Result struct {
	URL   string
	Links []linkx.ExtractedLink
	Err   error
}

// LinksText returns the newline-joined final links of a successful result.
func (r Result) LinksText() string {
	return linkx.JoinFinal(r.Links)
}

// ProgressFunc is called after each URL completes.
type ProgressFunc func(completed, total int, r Result)

// Runner extracts links from many URLs.
type Runner struct {
	Extractor   linkx.Extractor
	Limiter     Limiter // optional
	Concurrency int
}

// Run extracts every URL and returns results in input order. A failed URL
// is reported in its Result and does not stop the others. Invalid URLs fail
// with EINVALID without being submitted.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) []Result {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(urls))
	done := make(chan int)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				results[i] = r.extract(gctx, u)
				done <- i
				return nil
			})
		}
		_ = g.Wait()
		close(done)
	}()

	completed := 0
	for i := range done {
		completed++
		if progress != nil {
			progress(completed, len(urls), results[i])
		}
	}

	return results
}

func (r *Runner) extract(ctx context.Context, u string) Result {
	res := Result{URL: u}
	if err := linkx.ValidateURL(u); err != nil {
		res.Err = err
		return res
	}
	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, u); err != nil {
			res.Err = err
			return res
		}
	}
	res.Links, res.Err = r.Extractor.Extract(ctx, u)
	return res
}
