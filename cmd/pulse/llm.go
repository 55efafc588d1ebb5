package main

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/mfeld/parity-pulse/internal/common"
	"github.com/mfeld/parity-pulse/internal/llm"
)

// createCapabilityClient creates a text-understanding client from
// configuration. Returns nil when no API key is configured: the engine
// then runs entirely on the deterministic fallback, which is a supported
// mode, not an error.
func createCapabilityClient() llm.Client {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "openai"
	}

	cfg := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		BaseURL:     viper.GetString("llm.base_url"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		Timeout:     viper.GetDuration("llm.timeout"),
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	switch provider {
	case "openai":
		cfg.APIKey = viper.GetString("llm.openai_api_key")
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	case "anthropic":
		cfg.APIKey = viper.GetString("llm.anthropic_api_key")
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}

	if cfg.APIKey == "" {
		common.LogInfo("no capability API key configured, classification uses local fallback only", common.Fields{"provider": provider})
		return nil
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		common.LogError(err, "failed to create capability client, using local fallback only", common.Fields{"provider": provider})
		return nil
	}
	return client
}
