// Package slog provides log/slog decorators for linkx interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkx"
)

// Ensure LoggingExtractor implements linkx.Extractor.
var _ linkx.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   linkx.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next linkx.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, url string) (links []linkx.ExtractedLink, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"url", url,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, url)
}
