package slog

import (
	"log/slog"

	"github.com/fwojciec/linkx"
)

// Ensure LoggingClipboard implements linkx.Clipboard.
var _ linkx.Clipboard = (*LoggingClipboard)(nil)

// LoggingClipboard wraps a Clipboard with debug logging.
type LoggingClipboard struct {
	next   linkx.Clipboard
	logger *slog.Logger
}

// NewLoggingClipboard creates a new LoggingClipboard.
func NewLoggingClipboard(next linkx.Clipboard, logger *slog.Logger) *LoggingClipboard {
	return &LoggingClipboard{next: next, logger: logger}
}

// WriteText delegates to the wrapped clipboard and logs the byte count.
func (c *LoggingClipboard) WriteText(text string) error {
	err := c.next.WriteText(text)
	if err != nil {
		c.logger.Warn("clipboard write", "bytes", len(text), "err", err)
		return err
	}
	c.logger.Debug("clipboard write", "bytes", len(text))
	return nil
}
