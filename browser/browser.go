// Package browser implements linkx.Browser by handing URLs to the
// operating system's default web browser.
package browser

import (
	"io"
	"sync"

	"github.com/fwojciec/linkx"
	"github.com/pkg/browser"
)

// Ensure Browser implements linkx.Browser at compile time.
var _ linkx.Browser = (*Browser)(nil)

// silenceOpener discards the output of the launched opener process
// (xdg-open, open, ...) so it does not interleave with CLI output.
// github.com/pkg/browser only exposes package-level writers, so they are
// set once for the whole process.
var silenceOpener sync.Once

// Browser opens URLs in the default browser, each in a new tab or window.
// It is safe for concurrent use.
type Browser struct{}

// NewBrowser creates a new Browser.
func NewBrowser() *Browser {
	silenceOpener.Do(func() {
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
	})
	return &Browser{}
}

// Open launches the default browser at url.
func (b *Browser) Open(url string) error {
	if err := linkx.ValidateURL(url); err != nil {
		return err
	}
	return browser.OpenURL(url)
}
