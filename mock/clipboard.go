package mock

import "github.com/fwojciec/linkx"

var _ linkx.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of linkx.Clipboard.
type Clipboard struct {
	WriteTextFn func(text string) error
}

func (c *Clipboard) WriteText(text string) error {
	return c.WriteTextFn(text)
}
