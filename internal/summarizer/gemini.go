package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/coursenotes/internal/logging"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used unless configured otherwise.
const DefaultModel = "gemini-2.5-flash"

const promptTemplate = `Summarize the following notes concisely. Focus on the key takeaways and create a short, easy-to-digest summary. The summary should be a single paragraph.

Notes:
---
%s
---

Summary:`

// generateContent is a test seam for the Gemini API round trip.
var generateContent = func(ctx context.Context, c *genai.Client, model string, prompt string) (string, error) {
	resp, err := c.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Gemini summarizes note text through the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     logging.Logger
}

// NewGemini builds a Gemini summarizer. A non-positive timeout disables the
// per-call deadline.
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration, log logging.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{client: client, model: model, timeout: timeout, log: log}, nil
}

// Summarize returns a single-paragraph summary of text, or FallbackError if
// the call fails or times out. It never returns an error.
func (g *Gemini) Summarize(ctx context.Context, text string) string {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	out, err := generateContent(ctx, g.client, g.model, fmt.Sprintf(promptTemplate, text))
	if err != nil {
		g.log.Warn(ctx, "error generating summary", "error", err)
		return FallbackError
	}
	return strings.TrimSpace(out)
}
