package types

import (
	"io"
	"log/slog"
)

// ExtractionOptions configures username extraction.
// It controls how profile URLs are built, how much input is accepted from
// a reader and where diagnostics are written.
type ExtractionOptions struct {
	ProfileURLFormat string       // fmt template with a single %s verb for the username
	MaxInputSize     int64        // Maximum number of bytes read from an io.Reader
	Logger           *slog.Logger // Diagnostics sink
}

// DefaultOptions returns the default extraction options.
// Profile URLs point at instagram.com, readers are limited to 64MB and
// diagnostics are discarded.
func DefaultOptions() ExtractionOptions {
	return ExtractionOptions{
		ProfileURLFormat: DefaultProfileURLFormat,
		MaxInputSize:     64 << 20, // 64MB
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
