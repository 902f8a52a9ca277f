// Package msg validates, repairs and synthesizes Conventional Commit messages.
package msg

import (
	"regexp"
	"strings"
)

// ccSubject is the Conventional Commit subject grammar: an enumerated type
// token, an optional parenthesized scope, then a summary of 1-72 characters.
var ccSubject = regexp.MustCompile(`(?i)^(feat|fix|chore|docs|refactor|test|build|style|perf)(\([^)]+\))?: .{1,72}$`)

// errorPrefixes mark a first line as a degraded model response (the model
// echoing a runtime error instead of writing a commit message).
var errorPrefixes = []string{
	"error:", "unexpected token", "syntaxerror", "uncaught",
	"traceback", "referenceerror", "typeerror",
}

// maxBodyLines caps the message at a subject plus five non-empty body lines.
const maxBodyLines = 5

// ValidateOrFallback checks a candidate against the commit-message shape
// rules. A valid candidate is kept, clamped to subject plus body. A
// repairable one (wrong type token but colon-separated) is coerced into a
// 72-character subject. Anything else becomes the fallback.
func ValidateOrFallback(candidate, fallback string) string {
	if candidate == "" {
		return fallback
	}
	lines := strings.Split(candidate, "\n")
	first := strings.TrimSpace(lines[0])

	low := strings.ToLower(first)
	for _, p := range errorPrefixes {
		if strings.HasPrefix(low, p) {
			return fallback
		}
	}

	if !ccSubject.MatchString(first) {
		if i := strings.Index(first, ":"); i >= 0 {
			return repair(first[:i], first[i+1:])
		}
		return fallback
	}

	kept := []string{first}
	for _, l := range lines[1:] {
		if strings.TrimSpace(l) == "" {
			continue
		}
		kept = append(kept, l)
		if len(kept) == maxBodyLines+1 {
			break
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// repair coerces a colon-separated line into a subject that fits 72
// characters: the type token is clamped to 50 runes and the summary to the
// room the original token length leaves.
func repair(typ, rest string) string {
	room := 72 - len([]rune(typ)) - 2
	if room < 0 {
		room = 0
	}
	return truncRunes(typ, 50) + ": " + truncRunes(strings.TrimSpace(rest), room)
}

func truncRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// junkTokens are residual pseudo-markup a model sometimes wraps its answer in.
var junkTokens = []string{"```", "~~~", "{code}", "</code>"}

// Scrub removes residual code-fence and pseudo-markup tokens from the final
// message text.
func Scrub(s string) string {
	for _, junk := range junkTokens {
		s = strings.ReplaceAll(s, junk, "")
	}
	return s
}
