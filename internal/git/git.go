package git

import (
	"os/exec"
	"strings"
)

// Git defines the repository queries the hook needs, enabling test doubles.
// Every query degrades to an empty string on failure — the pipeline must
// tolerate partial context rather than abort a commit.
type Git interface {
	CurrentBranch() string
	StagedFiles() string
	Numstat() string
	StagedDiff() string
	HasStagedChanges() bool
	Dir() string
}

// Default is the package-level Git implementation used by free functions.
// Tests can replace this with a mock.
var Default Git = ExecGit{}

// ExecGit implements Git by shelling out to the git CLI.
type ExecGit struct{}

func run(args ...string) string {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// CurrentBranch discovers the abbreviated branch name, failing over through
// alternate commands before settling on the literal "HEAD" for detached state.
func (ExecGit) CurrentBranch() string {
	for _, args := range [][]string{
		{"rev-parse", "--abbrev-ref", "HEAD"},
		{"symbolic-ref", "--short", "HEAD"},
		{"branch", "--show-current"},
	} {
		if b := run(args...); b != "" {
			return b
		}
	}
	return "HEAD"
}

func (ExecGit) StagedFiles() string {
	return run("diff", "--staged", "--name-only")
}

func (ExecGit) Numstat() string {
	return run("diff", "--staged", "--numstat")
}

// StagedDiff returns the staged unified diff with zero context lines and no
// color, the shape the prompt byte budget is calibrated for.
func (ExecGit) StagedDiff() string {
	return run("diff", "--staged", "-U0", "--no-color")
}

func (ExecGit) HasStagedChanges() bool {
	return exec.Command("git", "diff", "--staged", "--quiet").Run() != nil
}

// Dir returns the repository's git directory (usually ".git"), where the
// diagnostic log lives.
func (ExecGit) Dir() string {
	if d := run("rev-parse", "--git-dir"); d != "" {
		return d
	}
	return ".git"
}

// Free functions delegate to Default.

func CurrentBranch() string  { return Default.CurrentBranch() }
func StagedFiles() string    { return Default.StagedFiles() }
func Numstat() string        { return Default.Numstat() }
func StagedDiff() string     { return Default.StagedDiff() }
func HasStagedChanges() bool { return Default.HasStagedChanges() }
func Dir() string            { return Default.Dir() }
