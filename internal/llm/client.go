// Package llm provides the pluggable text-understanding capability the
// classifier and brief generator call out to. Providers are abstracted
// behind a single text-in, JSON-out method so implementations can swap
// vendors or run on the deterministic fallback alone in tests.
package llm

import (
	"context"
	"strings"
	"time"
)

// Client is the text-completion capability. Complete sends one prompt and
// returns the raw response content, expected to be a JSON object.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for capability providers.
type Config struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// CleanJSON strips markdown code fences that providers sometimes wrap
// around JSON payloads despite instructions not to.
func CleanJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx >= 0 {
			content = content[idx+1:]
		} else {
			content = strings.TrimPrefix(content, "```json")
			content = strings.TrimPrefix(content, "```")
		}
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}
