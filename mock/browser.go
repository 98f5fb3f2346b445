package mock

import "github.com/fwojciec/linkx"

var _ linkx.Browser = (*Browser)(nil)

// Browser is a mock implementation of linkx.Browser.
type Browser struct {
	OpenFn func(url string) error
}

func (b *Browser) Open(url string) error {
	return b.OpenFn(url)
}
