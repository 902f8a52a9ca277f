package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoAPIKey marks a hosted provider invoked without a resolvable key.
var ErrNoAPIKey = errors.New("no API key resolved")

// GeminiProvider talks to a hosted generate-content endpoint. The key goes
// in a request header, not the URL.
type GeminiProvider struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float64
	TopP        float64
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	GenerationConfig geminiGenConfig `json:"generationConfig"`
	Contents         []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	// A populated error object counts as failure even on HTTP 200.
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt Prompt) (string, error) {
	if p.APIKey == "" {
		return "", fmt.Errorf("gemini: %w", ErrNoAPIKey)
	}

	body := geminiRequest{
		GenerationConfig: geminiGenConfig{
			Temperature:     p.Temperature,
			TopP:            p.TopP,
			MaxOutputTokens: maxOutputTokens,
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt.System + "\n\n" + prompt.User}}},
		},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(p.BaseURL, "/"), p.Model)
	headers := map[string]string{"X-Goog-Api-Key": p.APIKey}

	var result geminiResponse
	if err := postJSON(ctx, url, body, headers, p.Timeout, &result); err != nil {
		return "", fmt.Errorf("gemini %s: %w", url, err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("gemini API error: %s", result.Error.Message)
	}
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("gemini: no candidates")
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String()), nil
}
