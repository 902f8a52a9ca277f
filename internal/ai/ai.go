package ai

import "context"

// Prompt is the pair of instructions sent to a provider.
type Prompt struct {
	System string
	User   string
}

// Provider generates a raw commit-message candidate from a prompt. A
// generation must complete within the provider's configured timeout; any
// network, auth or malformed-response failure comes back as an error whose
// text includes a truncated view of the unusable body, so the caller can
// log it and degrade to an empty candidate.
type Provider interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}
