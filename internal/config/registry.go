package config

// ProviderEntry holds the static defaults for a known provider backend.
type ProviderEntry struct {
	DefaultURL string
	DefaultEnv string
	NeedsAuth  bool
}

// Registry maps provider names to their static defaults. Per-file and
// per-env configuration layers override these.
var Registry = map[string]ProviderEntry{
	"ollama": {
		DefaultURL: "http://127.0.0.1:11434",
		DefaultEnv: "",
		NeedsAuth:  false,
	},
	"openai": {
		DefaultURL: "https://api.openai.com/v1",
		DefaultEnv: "OPENAI_API_KEY",
		NeedsAuth:  true,
	},
	"gemini": {
		DefaultURL: "https://generativelanguage.googleapis.com/v1beta",
		DefaultEnv: "GEMINI_API_KEY",
		NeedsAuth:  true,
	},
}

// Providers returns the known provider names in a stable order.
func Providers() []string {
	return []string{"ollama", "openai", "gemini"}
}

// ResolvedProvider is the fully-merged provider configuration ready for use.
type ResolvedProvider struct {
	Name      string
	Model     string
	BaseURL   string
	APIKey    string
	Env       string
	NeedsAuth bool
}
