// Package sanitize turns raw diff text into a bounded, prompt-safe payload.
package sanitize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Markers wrapping the sanitized diff. The model is told not to parse the
// block as syntax, so the delimiters must never occur inside it — the fence
// lookalike substitution below guarantees that for the common breakouts.
const (
	BlockOpen      = "<DIFF>\n<![CDATA[\n"
	BlockClose     = "\n]]>\n</DIFF>"
	truncationMark = "\n… [truncated]"
)

// Blob makes arbitrary text safe to embed in an LLM prompt and clamps its
// size by bytes. Empty input yields empty output with no wrapper — wrapping
// an empty diff would invite the model to invent content.
func Blob(text string, byteBudget int) string {
	if text == "" {
		return ""
	}
	text = normalize(text)
	text = clamp(text, byteBudget)
	return BlockOpen + text + BlockClose
}

// normalize strips NULs, folds line endings to \n, applies Unicode NFC and
// replaces code-fence delimiters with visually similar lookalikes so the
// diff cannot break out of its block. Idempotent.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "```", "ʼʼʼ")
	text = strings.ReplaceAll(text, "~~~", "∼∼∼")
	return text
}

// clamp truncates text to byteBudget at a UTF-8-safe boundary, appending a
// truncation marker when anything was cut.
func clamp(text string, byteBudget int) string {
	if byteBudget < 0 {
		byteBudget = 0
	}
	if len(text) <= byteBudget {
		return text
	}
	cut := byteBudget
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + truncationMark
}
