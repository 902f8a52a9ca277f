package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/richardhedges/GitAiMsg/internal/git"
	"github.com/richardhedges/GitAiMsg/internal/hooklog"
	"github.com/richardhedges/GitAiMsg/internal/term"
)

var logLines int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent hook diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(git.Dir(), hooklog.FileName)
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("\n  %s\n\n", term.Dim.Render("No hook log yet at "+path))
			return nil
		}

		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		if len(lines) > logLines {
			lines = lines[len(lines)-logLines:]
		}

		fmt.Println()
		for _, l := range lines {
			fmt.Println("  " + l)
		}
		fmt.Printf("\n  %s\n\n", term.Dim.Render(path))
		return nil
	},
}

func init() {
	logCmd.Flags().IntVarP(&logLines, "lines", "n", 20, "Number of trailing lines to show")
	rootCmd.AddCommand(logCmd)
}
