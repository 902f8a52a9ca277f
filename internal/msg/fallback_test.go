package msg

import "testing"

func TestFallback(t *testing.T) {
	tests := []struct {
		name    string
		numstat string
		want    string
	}{
		{
			name:    "empty numstat",
			numstat: "",
			want:    "chore: update 0 files (+0 -0)",
		},
		{
			name:    "single root file, no scope",
			numstat: "3\t1\tmain.go",
			want:    "chore: update 1 files (+3 -1)",
		},
		{
			name:    "scoped files, sorted distinct segments",
			numstat: "1\t2\tsrc/b.go\n4\t0\tcmd/a.go\n2\t2\tsrc/c.go",
			want:    "chore(cmd,src): update 3 files (+7 -4)",
		},
		{
			name:    "more than two scopes clamped",
			numstat: "1\t1\tzeta/a\n1\t1\talpha/b\n1\t1\tmid/c",
			want:    "chore(alpha,mid): update 3 files (+3 -3)",
		},
		{
			name:    "binary markers count as zero",
			numstat: "-\t-\tassets/logo.png\n2\t1\tassets/readme.md",
			want:    "chore(assets): update 2 files (+2 -1)",
		},
		{
			name:    "garbage counts count as zero",
			numstat: "abc\txyz\tdocs/guide.md",
			want:    "chore(docs): update 1 files (+0 -0)",
		},
		{
			name:    "lines without tabs skipped",
			numstat: "not a numstat line\n5\t0\tpkg/x.go",
			want:    "chore(pkg): update 1 files (+5 -0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.numstat)
			if got == "" {
				t.Fatal("Fallback returned empty string")
			}
			if got != tt.want {
				t.Errorf("Fallback(%q) = %q, want %q", tt.numstat, got, tt.want)
			}
		})
	}
}
