package main

import (
	"fmt"

	"github.com/fwojciec/linkx"
	"github.com/fwojciec/linkx/batch"
	"github.com/fwojciec/linkx/view"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if len(c.URLs) > 1 {
		if c.Copy || c.Visit != 0 {
			err := linkx.Errorf(linkx.EINVALID, "--copy and --visit need a single URL")
			fmt.Fprintf(deps.Stderr, "error: %s\n", linkx.ErrorMessage(err))
			return err
		}
		return c.runBatch(deps)
	}

	if err := deps.View.Submit(deps.Ctx, c.URLs[0]); err != nil {
		msg := deps.View.Snapshot().Error
		if linkx.ErrorCode(err) == linkx.EINVALID {
			msg = linkx.ErrorMessage(err)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", msg)
		return err
	}

	state := deps.View.Snapshot()
	links := state.Links()
	if len(links) == 0 {
		fmt.Fprintln(deps.Stderr, "No links found.")
		return nil
	}
	for _, link := range links {
		fmt.Fprintln(deps.Stdout, link)
	}

	if c.Copy {
		notice := deps.View.CopyAll()
		fmt.Fprintln(deps.Stderr, notice.Message)
		if !notice.OK {
			return fmt.Errorf("%s", notice.Message)
		}
	}

	if c.Visit != 0 {
		if _, err := deps.View.Click(c.Visit-1, view.TargetRow); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", visitErrorMessage(err))
			return err
		}
	}

	return nil
}

func (c *ExtractCmd) runBatch(deps *Dependencies) error {
	runner := &batch.Runner{
		Extractor:   deps.Extractor,
		Concurrency: c.Concurrency,
	}
	// A zero rate disables throttling.
	if c.RPS > 0 {
		runner.Limiter = batch.NewDomainLimiter(c.RPS)
	}

	progress := func(completed, total int, r batch.Result) {
		deps.Logger.Debug("batch progress", "url", r.URL, "completed", completed, "total", total, "err", r.Err)
	}

	results := runner.Run(deps.Ctx, c.URLs, progress)

	failed := 0
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "# %s\n", r.URL)
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.URL, batchErrorMessage(r.Err))
			continue
		}
		for _, link := range linkx.SplitLinks(r.LinksText()) {
			fmt.Fprintln(deps.Stdout, link)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d extractions failed", failed, len(results))
	}
	return nil
}

func batchErrorMessage(err error) string {
	if linkx.ErrorCode(err) == linkx.EINVALID {
		return linkx.ErrorMessage(err)
	}
	return view.ErrorText(err)
}

func visitErrorMessage(err error) string {
	switch linkx.ErrorCode(err) {
	case linkx.ENOTFOUND, linkx.EINVALID:
		return linkx.ErrorMessage(err)
	}
	return err.Error()
}
