package ai

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/richardhedges/GitAiMsg/internal/xdg"
)

// DefaultSystemPrompt is the built-in persona used when no override is
// configured.
const DefaultSystemPrompt = "You are a senior developer writing concise Conventional Commit messages."

// DiffOmitted replaces the diff block on the minimal second attempt.
const DiffOmitted = "<DIFF omitted/>"

// CommitContext holds the fields embedded verbatim into the user message.
// DiffBlock is either the sanitized opaque diff block or DiffOmitted.
type CommitContext struct {
	Branch    string
	Files     string
	Numstat   string
	DiffBlock string
}

// BuildPrompt assembles the prompt for one attempt. Pure: same inputs, same
// prompt. Only the diff is sanitized upstream; the template text itself is
// program-controlled.
func BuildPrompt(cc CommitContext, system string) Prompt {
	if system == "" {
		system = DefaultSystemPrompt
	}

	var b strings.Builder
	b.WriteString("Write ONLY a git commit message.\n\n")
	b.WriteString("Constraints:\n")
	b.WriteString("- First line MUST be: type(scope?): summary (≤ 72 chars). Types: feat|fix|chore|docs|refactor|test|build|style|perf\n")
	b.WriteString("- Optionally 1–5 bullets on following lines.\n")
	b.WriteString("- Do NOT include code fences, JSON, or explanations.\n\n")
	fmt.Fprintf(&b, "Branch:\n%s\n\n", cc.Branch)
	fmt.Fprintf(&b, "Files staged:\n%s\n\n", cc.Files)
	fmt.Fprintf(&b, "Changes (numstat):\n%s\n\n", cc.Numstat)
	fmt.Fprintf(&b, "Diff (opaque block; do not parse syntax inside):\n%s\n", cc.DiffBlock)

	return Prompt{System: system, User: b.String()}
}

// PromptPath returns the path to the user's system-prompt override file.
func PromptPath() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prompt.txt"), nil
}

// LoadPrompt reads the system prompt from the override file, falling back
// to the built-in default when the file is missing or empty.
func LoadPrompt() string {
	path, err := PromptPath()
	if err != nil {
		return DefaultSystemPrompt
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSystemPrompt
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return DefaultSystemPrompt
	}
	return prompt
}

// WritePrompt writes the prompt content to the override file.
func WritePrompt(content string) error {
	path, err := PromptPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content+"\n"), 0o644)
}
