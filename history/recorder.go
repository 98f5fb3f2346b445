// Package history records successful extractions.
package history

import (
	"context"
	"log/slog"

	"github.com/fwojciec/linkx"
)

// Ensure Recorder implements linkx.Extractor.
var _ linkx.Extractor = (*Recorder)(nil)

// Recorder wraps an Extractor and writes each successful result to an
// ExtractionWriter. Failed extractions are not recorded. A failed write is
// logged and does not affect the extraction result.
type Recorder struct {
	next   linkx.Extractor
	writer linkx.ExtractionWriter
	logger *slog.Logger
}

// NewRecorder creates a new Recorder.
func NewRecorder(next linkx.Extractor, writer linkx.ExtractionWriter, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{next: next, writer: writer, logger: logger}
}

// Extract delegates to the wrapped extractor and records the result.
func (r *Recorder) Extract(ctx context.Context, url string) ([]linkx.ExtractedLink, error) {
	links, err := r.next.Extract(ctx, url)
	if err != nil {
		return nil, err
	}

	record := &linkx.Extraction{
		SourceURL: url,
		Links:     append([]linkx.ExtractedLink(nil), links...),
	}
	// Recording must outlive a request context canceled right after the
	// response was received.
	if werr := r.writer.CreateExtraction(context.WithoutCancel(ctx), record); werr != nil {
		r.logger.Warn("record extraction", "url", url, "err", werr)
	} else {
		r.logger.Debug("record extraction", "url", url, "id", record.ID, "count", len(links))
	}

	return links, nil
}
