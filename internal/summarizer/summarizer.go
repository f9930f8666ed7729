// Package summarizer produces short synopses of note text via the Gemini
// API. The contract is deliberately lossy: Summarize always returns a
// string, substituting a fixed fallback on any fault, so note creation never
// has to handle a summary error.
package summarizer

import (
	"context"
	"time"

	"github.com/dmitrijs2005/coursenotes/internal/logging"
)

const (
	// FallbackDisabled is returned when no API key is configured.
	FallbackDisabled = "API key not configured. Summary generation is disabled."

	// FallbackError is returned when the underlying call fails for any
	// reason, including timeout.
	FallbackError = "Could not generate summary due to an error."
)

// Summarizer produces a short summary of the given text. Implementations
// never fail outward: on any fault they return a fixed human-readable
// placeholder instead of an error.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// Disabled is the no-credential implementation.
type Disabled struct{}

func (Disabled) Summarize(ctx context.Context, text string) string {
	return FallbackDisabled
}

// New returns a Gemini-backed summarizer when an API key is configured and
// the client can be built, and the Disabled implementation otherwise.
func New(ctx context.Context, apiKey, model string, timeout time.Duration, log logging.Logger) Summarizer {
	if apiKey == "" {
		log.Warn(ctx, "gemini api key not found, summary generation is disabled")
		return Disabled{}
	}

	g, err := NewGemini(ctx, apiKey, model, timeout, log)
	if err != nil {
		log.Warn(ctx, "failed to initialize gemini client, summary generation is disabled", "error", err)
		return Disabled{}
	}
	return g
}
