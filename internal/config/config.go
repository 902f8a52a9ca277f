// Package config loads gitaimsg configuration with the precedence
// environment > repo file (.gitaimsg.toml) > user file
// ($XDG_CONFIG_HOME/gitaimsg/config.toml) > built-in defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/richardhedges/GitAiMsg/internal/keyring"
	"github.com/richardhedges/GitAiMsg/internal/xdg"
)

// RepoFileName is the repository-local config file, looked up in the
// working directory the hook runs in.
const RepoFileName = ".gitaimsg.toml"

type ProviderConfig struct {
	BaseURL   string `toml:"base_url,omitempty"`
	Model     string `toml:"model,omitempty"`
	APIKey    string `toml:"api_key,omitempty"`
	APIKeyEnv string `toml:"api_key_env,omitempty"`
}

type Config struct {
	Provider     string  `toml:"provider"`
	Model        string  `toml:"model"`
	TimeoutS     int     `toml:"timeout_s"`
	MaxDiffBytes int     `toml:"max_diff_chars"` // historical key name; treated as a byte budget
	Temperature  float64 `toml:"temperature"`
	TopP         float64 `toml:"top_p"`
	SystemPrompt string  `toml:"system_prompt,omitempty"`

	Ollama ProviderConfig `toml:"ollama"`
	OpenAI ProviderConfig `toml:"openai"`
	Gemini ProviderConfig `toml:"gemini"`
}

func DefaultConfig() Config {
	return Config{
		Provider:     "ollama",
		Model:        "qwen2.5-coder:7b",
		TimeoutS:     30,
		MaxDiffBytes: 15000,
		Temperature:  0.2,
		TopP:         1.0,
	}
}

// Path returns the user-global config file path.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load merges defaults, the user file, the repo file and the environment,
// in that order. Missing or unreadable files are skipped silently — the
// hook must run with whatever configuration is available.
func Load() Config {
	cfg := DefaultConfig()
	if path, err := Path(); err == nil {
		mergeFile(&cfg, path)
	}
	mergeFile(&cfg, RepoFileName)
	applyEnv(&cfg)
	return cfg
}

func mergeFile(cfg *Config, path string) {
	var layer Config
	if _, err := toml.DecodeFile(path, &layer); err != nil {
		return
	}
	merge(cfg, layer)
}

// merge overlays non-zero fields of src onto dst.
func merge(dst *Config, src Config) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.TimeoutS != 0 {
		dst.TimeoutS = src.TimeoutS
	}
	if src.MaxDiffBytes != 0 {
		dst.MaxDiffBytes = src.MaxDiffBytes
	}
	if src.Temperature != 0 {
		dst.Temperature = src.Temperature
	}
	if src.TopP != 0 {
		dst.TopP = src.TopP
	}
	if src.SystemPrompt != "" {
		dst.SystemPrompt = src.SystemPrompt
	}
	mergeProvider(&dst.Ollama, src.Ollama)
	mergeProvider(&dst.OpenAI, src.OpenAI)
	mergeProvider(&dst.Gemini, src.Gemini)
}

func mergeProvider(dst *ProviderConfig, src ProviderConfig) {
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.APIKey != "" {
		dst.APIKey = src.APIKey
	}
	if src.APIKeyEnv != "" {
		dst.APIKeyEnv = src.APIKeyEnv
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GITAIMSG_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("GITAIMSG_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("GITAIMSG_TIMEOUT_S"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutS = n
		}
	}
	if v := os.Getenv("GITAIMSG_MAX_DIFF"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxDiffBytes = n
		}
	}
	if v := os.Getenv("GITAIMSG_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("GITAIMSG_TOP_P"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.TopP = f
		}
	}
	if v := os.Getenv("GITAIMSG_SYSTEM_PROMPT"); v != "" {
		cfg.SystemPrompt = v
	}
	if v := os.Getenv("OLLAMA_URL"); v != "" {
		cfg.Ollama.BaseURL = v
	}
}

// Timeout returns the per-request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutS) * time.Second
}

func (c Config) providerConfig(name string) ProviderConfig {
	switch name {
	case "openai":
		return c.OpenAI
	case "gemini":
		return c.Gemini
	default:
		return c.Ollama
	}
}

// ResolveProvider merges registry defaults with the configured layers for
// the named provider and resolves its API key: named env var first, then
// the config value, then the OS keyring.
func (c Config) ResolveProvider(name string) ResolvedProvider {
	entry := Registry[name]
	pc := c.providerConfig(name)

	rp := ResolvedProvider{
		Name:      name,
		Model:     c.Model,
		BaseURL:   entry.DefaultURL,
		Env:       entry.DefaultEnv,
		NeedsAuth: entry.NeedsAuth,
	}
	if pc.Model != "" {
		rp.Model = pc.Model
	}
	if pc.BaseURL != "" {
		rp.BaseURL = pc.BaseURL
	}
	if pc.APIKeyEnv != "" {
		rp.Env = pc.APIKeyEnv
	}
	if rp.NeedsAuth {
		if key := os.Getenv(rp.Env); key != "" {
			rp.APIKey = key
		} else if pc.APIKey != "" {
			rp.APIKey = pc.APIKey
		} else if key, _ := keyring.Get(name); key != "" {
			rp.APIKey = key
		}
	}
	return rp
}
