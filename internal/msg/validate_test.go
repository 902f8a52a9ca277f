package msg

import (
	"strings"
	"testing"
)

func TestValidateOrFallback(t *testing.T) {
	const fb = "chore: update 2 files (+3 -1)"

	t.Run("empty candidate returns fallback", func(t *testing.T) {
		if got := ValidateOrFallback("", fb); got != fb {
			t.Errorf("got %q, want fallback", got)
		}
	})

	t.Run("all type tokens accepted", func(t *testing.T) {
		for _, typ := range []string{"feat", "fix", "chore", "docs", "refactor", "test", "build", "style", "perf"} {
			t.Run(typ, func(t *testing.T) {
				plain := typ + ": do the thing"
				if got := ValidateOrFallback(plain, fb); got != plain {
					t.Errorf("ValidateOrFallback(%q) = %q", plain, got)
				}
				scoped := typ + "(core): do the thing"
				if got := ValidateOrFallback(scoped, fb); got != scoped {
					t.Errorf("ValidateOrFallback(%q) = %q", scoped, got)
				}
			})
		}
	})

	t.Run("case-insensitive type token", func(t *testing.T) {
		in := "Feat(auth): add token refresh"
		if got := ValidateOrFallback(in, fb); got != in {
			t.Errorf("got %q, want %q", got, in)
		}
	})

	t.Run("error-signature first line replaced by fallback", func(t *testing.T) {
		for _, in := range []string{
			"Error: something exploded",
			"Traceback (most recent call last):",
			"TypeError: undefined is not a function",
			"Unexpected token < in JSON",
			"SyntaxError: invalid syntax",
			"Uncaught ReferenceError: x is not defined",
			"ReferenceError: y",
		} {
			if got := ValidateOrFallback(in, fb); got != fb {
				t.Errorf("ValidateOrFallback(%q) = %q, want fallback", in, got)
			}
		}
	})

	t.Run("valid candidate kept with body clamped to five lines", func(t *testing.T) {
		in := "feat(auth): add token refresh\n- one\n\n- two\n- three\n- four\n- five\n- six\n- seven"
		got := ValidateOrFallback(in, fb)
		lines := strings.Split(got, "\n")
		if len(lines) != 6 {
			t.Fatalf("got %d lines, want 6: %q", len(lines), got)
		}
		if lines[0] != "feat(auth): add token refresh" {
			t.Errorf("subject = %q", lines[0])
		}
		if lines[5] != "- five" {
			t.Errorf("last kept line = %q, want \"- five\"", lines[5])
		}
	})

	t.Run("already valid short message passes through unchanged", func(t *testing.T) {
		in := "feat(auth): add token refresh\n- handles expiry\n- adds tests"
		if got := ValidateOrFallback(in, fb); got != in {
			t.Errorf("got %q, want unchanged", got)
		}
	})

	t.Run("no colon returns fallback", func(t *testing.T) {
		if got := ValidateOrFallback("Added some stuff", fb); got != fb {
			t.Errorf("got %q, want fallback", got)
		}
	})

	t.Run("unknown type with colon is repaired, not rejected", func(t *testing.T) {
		got := ValidateOrFallback("oops: fixed the thing", fb)
		if got != "oops: fixed the thing" {
			t.Errorf("got %q, want repaired line", got)
		}
	})

	t.Run("repair clamps overlong subjects to fit 72", func(t *testing.T) {
		long := "wip: " + strings.Repeat("a", 200)
		got := ValidateOrFallback(long, fb)
		if len([]rune(got)) > 72 {
			t.Errorf("repaired subject too long (%d runes): %q", len([]rune(got)), got)
		}
		if !strings.HasPrefix(got, "wip: ") {
			t.Errorf("lost type token: %q", got)
		}
	})

	t.Run("repair clamps huge type token to 50 runes", func(t *testing.T) {
		got := ValidateOrFallback(strings.Repeat("t", 90)+": summary", fb)
		typ := got[:strings.Index(got, ":")]
		if len(typ) != 50 {
			t.Errorf("type token length = %d, want 50", len(typ))
		}
	})

	t.Run("valid subject longer than 72 goes through repair", func(t *testing.T) {
		in := "feat: " + strings.Repeat("x", 100)
		got := ValidateOrFallback(in, fb)
		if got == fb {
			t.Fatalf("expected repair, got fallback")
		}
		if len([]rune(got)) > 72 {
			t.Errorf("repaired line too long: %q", got)
		}
	})
}

func TestScrub(t *testing.T) {
	in := "```feat: x```\n~~~body~~~ {code}tail</code>"
	got := Scrub(in)
	for _, junk := range []string{"```", "~~~", "{code}", "</code>"} {
		if strings.Contains(got, junk) {
			t.Errorf("junk token %q survived: %q", junk, got)
		}
	}
	if !strings.Contains(got, "feat: x") {
		t.Errorf("content damaged: %q", got)
	}
}
