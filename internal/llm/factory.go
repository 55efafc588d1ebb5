package llm

import (
	"fmt"
	"strings"

	"github.com/mfeld/parity-pulse/internal/common"
)

// NewClient creates a capability client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported capability provider %q", common.ErrInvalidConfig, cfg.Provider)
	}
}
