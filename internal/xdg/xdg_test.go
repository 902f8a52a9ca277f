package xdg

import (
	"strings"
	"testing"
)

func TestConfigDir_Default(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(dir, ".config/gitaimsg") {
		t.Fatalf("expected suffix .config/gitaimsg, got %s", dir)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/xdg/gitaimsg" {
		t.Fatalf("expected /tmp/xdg/gitaimsg, got %s", dir)
	}
}
