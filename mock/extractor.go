package mock

import (
	"context"

	"github.com/fwojciec/linkx"
)

var _ linkx.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of linkx.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string) ([]linkx.ExtractedLink, error)
}

func (e *Extractor) Extract(ctx context.Context, url string) ([]linkx.ExtractedLink, error) {
	return e.ExtractFn(ctx, url)
}
