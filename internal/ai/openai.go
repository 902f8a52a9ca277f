package ai

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// maxOutputTokens bounds hosted completions; a commit message never needs more.
const maxOutputTokens = 300

// OpenAIProvider talks to a hosted chat-completions endpoint.
type OpenAIProvider struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float64
	TopP        float64
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	TopP        float64         `json:"top_p"`
	MaxTokens   int             `json:"max_tokens"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt Prompt) (string, error) {
	// No key means no call: the hook stays silent about hosted providers
	// that were never set up.
	if p.APIKey == "" {
		return "", nil
	}

	body := openaiRequest{
		Model: p.Model,
		Messages: []openaiMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		Temperature: p.Temperature,
		TopP:        p.TopP,
		MaxTokens:   maxOutputTokens,
	}

	url := strings.TrimRight(p.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + p.APIKey}

	var result openaiResponse
	if err := postJSON(ctx, url, body, headers, p.Timeout, &result); err != nil {
		return "", fmt.Errorf("openai %s: %w", url, err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("openai API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices")
	}
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
