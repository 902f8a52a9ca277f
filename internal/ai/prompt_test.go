package ai

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	cc := CommitContext{
		Branch:    "feat/login",
		Files:     "auth/token.go\nauth/token_test.go",
		Numstat:   "10\t2\tauth/token.go",
		DiffBlock: "<DIFF>\n<![CDATA[\ndiff body\n]]>\n</DIFF>",
	}

	t.Run("fields embedded verbatim", func(t *testing.T) {
		p := BuildPrompt(cc, "")
		for _, want := range []string{
			"Branch:\nfeat/login",
			"Files staged:\nauth/token.go\nauth/token_test.go",
			"Changes (numstat):\n10\t2\tauth/token.go",
			"Diff (opaque block; do not parse syntax inside):\n<DIFF>",
		} {
			if !strings.Contains(p.User, want) {
				t.Errorf("user message missing %q", want)
			}
		}
	})

	t.Run("constraints present", func(t *testing.T) {
		p := BuildPrompt(cc, "")
		if !strings.Contains(p.User, "feat|fix|chore|docs|refactor|test|build|style|perf") {
			t.Error("missing type enumeration")
		}
		if !strings.Contains(p.User, "Do NOT include code fences") {
			t.Error("missing fence prohibition")
		}
	})

	t.Run("default persona when no override", func(t *testing.T) {
		p := BuildPrompt(cc, "")
		if p.System != DefaultSystemPrompt {
			t.Errorf("System = %q", p.System)
		}
	})

	t.Run("override wins", func(t *testing.T) {
		p := BuildPrompt(cc, "You are terse.")
		if p.System != "You are terse." {
			t.Errorf("System = %q", p.System)
		}
	})

	t.Run("pure", func(t *testing.T) {
		a := BuildPrompt(cc, "x")
		b := BuildPrompt(cc, "x")
		if a != b {
			t.Error("BuildPrompt is not deterministic")
		}
	})
}

func TestLoadPrompt(t *testing.T) {
	t.Run("default when file missing", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		if got := LoadPrompt(); got != DefaultSystemPrompt {
			t.Errorf("LoadPrompt = %q, want default", got)
		}
	})

	t.Run("file contents win", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		if err := WritePrompt("Custom persona."); err != nil {
			t.Fatal(err)
		}
		if got := LoadPrompt(); got != "Custom persona." {
			t.Errorf("LoadPrompt = %q", got)
		}
		path, err := PromptPath()
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(path) != "prompt.txt" {
			t.Errorf("PromptPath = %q", path)
		}
	})

	t.Run("empty file falls back to default", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		if err := WritePrompt(""); err != nil {
			t.Fatal(err)
		}
		if got := LoadPrompt(); got != DefaultSystemPrompt {
			t.Errorf("LoadPrompt = %q, want default", got)
		}
	})
}
