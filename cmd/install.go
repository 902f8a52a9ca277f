package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/richardhedges/GitAiMsg/internal/git"
	"github.com/richardhedges/GitAiMsg/internal/term"
)

// hookScript is the prepare-commit-msg hook. It only fills in the message
// when the user did not pass one (-m, merge, amend all set $2).
const hookScript = `#!/bin/sh
# Installed by gitaimsg. Drafts a commit message from the staged diff.
case "$2" in
message|merge|squash|commit) exit 0 ;;
esac
msg="$(gitaimsg 2>/dev/null)"
if [ -n "$msg" ]; then
	printf '%s\n' "$msg" > "$1"
fi
exit 0
`

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the prepare-commit-msg hook in this repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := git.Dir()
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("not a git repository: %w", err)
		}

		path := filepath.Join(dir, "hooks", "prepare-commit-msg")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(hookScript), 0o755); err != nil {
			return fmt.Errorf("failed to write hook: %w", err)
		}

		fmt.Printf("  %s Hook installed at %s\n", term.OK(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
