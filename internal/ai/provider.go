package ai

import (
	"github.com/richardhedges/GitAiMsg/internal/config"
)

// NewProvider builds the configured provider variant. An unknown provider
// name falls through to Ollama, keeping the hook usable with a half-written
// config file.
func NewProvider(cfg config.Config) Provider {
	switch cfg.Provider {
	case "openai":
		rp := cfg.ResolveProvider("openai")
		return &OpenAIProvider{
			BaseURL:     rp.BaseURL,
			APIKey:      rp.APIKey,
			Model:       rp.Model,
			Timeout:     cfg.Timeout(),
			Temperature: cfg.Temperature,
			TopP:        cfg.TopP,
		}
	case "gemini":
		rp := cfg.ResolveProvider("gemini")
		return &GeminiProvider{
			BaseURL:     rp.BaseURL,
			APIKey:      rp.APIKey,
			Model:       rp.Model,
			Timeout:     cfg.Timeout(),
			Temperature: cfg.Temperature,
			TopP:        cfg.TopP,
		}
	default:
		rp := cfg.ResolveProvider("ollama")
		return &OllamaProvider{
			BaseURL:     rp.BaseURL,
			Model:       rp.Model,
			Timeout:     cfg.Timeout(),
			Temperature: cfg.Temperature,
			TopP:        cfg.TopP,
		}
	}
}
