// Package view implements the link extractor view: the state behind the
// URL form, the extracted-links list and its visit/copy actions. Front-ends
// (web page, CLI, terminal prompt) render a View and forward user actions
// to it.
package view

import (
	"context"
	"sync"

	"github.com/fwojciec/linkx"
)

// FallbackError is shown when a failed extraction carries no message from
// the service.
const FallbackError = "Failed to extract links. Please check the URL and try again."

// Acknowledgments returned by the copy actions.
const (
	MsgLinkCopied      = "Link copied to clipboard!"
	MsgLinkCopyFailed  = "Failed to copy link to clipboard."
	MsgLinksCopied     = "All links copied to clipboard!"
	MsgLinksCopyFailed = "Failed to copy links to clipboard."
)

// State is a point-in-time copy of the view state.
type State struct {
	URL       string
	Loading   bool
	Error     string // empty when there is no error
	LinksText string // newline-joined final links of the last success
}

// Links returns the entries of the links list.
func (s State) Links() []string {
	return linkx.SplitLinks(s.LinksText)
}

// Notice is the acknowledgment of a clipboard action. It is shown to the
// user once and never stored in the view state.
type Notice struct {
	OK      bool
	Message string
}

// Target identifies which part of a link row received a click.
type Target int

// Click targets within a row.
const (
	TargetRow Target = iota
	TargetCopy
)

// View holds the state of one link extractor form.
//
// The mutex guards state only while it is read or mutated; it is never held
// across the network call, so overlapping submissions are not serialized and
// the last one to resolve wins.
type View struct {
	extractor linkx.Extractor
	clipboard linkx.Clipboard
	browser   linkx.Browser

	mu    sync.Mutex
	state State
}

// New returns a View that extracts with e, copies with c and visits with b.
func New(e linkx.Extractor, c linkx.Clipboard, b linkx.Browser) *View {
	return &View{extractor: e, clipboard: c, browser: b}
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Submit extracts links from url and applies the result.
//
// Input that is not an absolute URL returns EINVALID and leaves the state
// untouched. Otherwise the previous error is cleared, the loading flag is
// raised for the duration of the request, and on success LinksText is
// replaced; on failure Error is set and LinksText is kept. The returned
// error is the extraction error, if any.
func (v *View) Submit(ctx context.Context, url string) error {
	if err := linkx.ValidateURL(url); err != nil {
		return err
	}

	v.mu.Lock()
	v.state.URL = url
	v.state.Loading = true
	v.state.Error = ""
	v.mu.Unlock()

	links, err := v.extractor.Extract(ctx, url)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Error = ErrorText(err)
	} else {
		v.state.LinksText = linkx.JoinFinal(links)
	}
	v.state.Loading = false
	return err
}

// ErrorText returns the message shown for a failed extraction: the
// service's own message when it sent one, FallbackError otherwise.
func ErrorText(err error) string {
	if linkx.ErrorCode(err) == linkx.EREMOTE {
		if msg := linkx.ErrorMessage(err); msg != "" {
			return msg
		}
	}
	return FallbackError
}

// Click dispatches a click on row index. A click on the copy button copies
// the link and never visits it; a click anywhere else on the row visits.
func (v *View) Click(index int, target Target) (Notice, error) {
	links := v.Snapshot().Links()
	if index < 0 || index >= len(links) {
		return Notice{}, linkx.Errorf(linkx.ENOTFOUND, "no link at position %d", index+1)
	}
	link := links[index]

	if target == TargetCopy {
		return v.CopyLink(link), nil
	}
	return Notice{}, v.Visit(link)
}

// Visit opens link in a new browsing context.
func (v *View) Visit(link string) error {
	return v.browser.Open(link)
}

// CopyLink copies a single link to the clipboard.
func (v *View) CopyLink(link string) Notice {
	if err := v.clipboard.WriteText(link); err != nil {
		return Notice{Message: MsgLinkCopyFailed}
	}
	return Notice{OK: true, Message: MsgLinkCopied}
}

// CopyAll copies every link, newline-joined, to the clipboard.
func (v *View) CopyAll() Notice {
	text := v.Snapshot().LinksText
	if err := v.clipboard.WriteText(text); err != nil {
		return Notice{Message: MsgLinksCopyFailed}
	}
	return Notice{OK: true, Message: MsgLinksCopied}
}
