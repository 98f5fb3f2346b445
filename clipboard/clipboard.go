// Package clipboard implements linkx.Clipboard using the host clipboard
// utilities (pbcopy, xclip/xsel, wl-copy, or the Windows API).
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/linkx"
)

// Ensure Clipboard implements linkx.Clipboard at compile time.
var _ linkx.Clipboard = (*Clipboard)(nil)

// Clipboard writes text to the system clipboard.
type Clipboard struct{}

// NewClipboard creates a new Clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Available reports whether a clipboard utility was found on this host.
func (c *Clipboard) Available() bool {
	return !clipboard.Unsupported
}

// WriteText replaces the clipboard contents with text.
func (c *Clipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return linkx.Errorf(linkx.EINTERNAL, "no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
