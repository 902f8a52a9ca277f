package ai

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// OllamaProvider talks to a local model server's generate endpoint. No auth.
type OllamaProvider struct {
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float64
	TopP        float64
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

func (p *OllamaProvider) url() string {
	base := strings.TrimRight(p.BaseURL, "/")
	if strings.HasSuffix(base, "/api/generate") {
		return base
	}
	return base + "/api/generate"
}

func (p *OllamaProvider) Generate(ctx context.Context, prompt Prompt) (string, error) {
	// Clamp temperature to suppress creative drift on local models.
	temp := p.Temperature
	if temp > 0.2 {
		temp = 0.2
	}

	body := ollamaRequest{
		Model:   p.Model,
		Prompt:  prompt.System + "\n\n" + prompt.User,
		Stream:  false,
		Options: ollamaOptions{Temperature: temp, TopP: p.TopP},
	}

	var result ollamaResponse
	if err := postJSON(ctx, p.url(), body, nil, p.Timeout, &result); err != nil {
		return "", fmt.Errorf("ollama %s: %w", p.url(), err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("ollama error: %s", result.Error)
	}
	return strings.TrimSpace(result.Response), nil
}
