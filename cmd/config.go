package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/richardhedges/GitAiMsg/internal/config"
	"github.com/richardhedges/GitAiMsg/internal/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective merged configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		fmt.Println()
		if path, err := config.Path(); err == nil {
			fmt.Printf("  %s %s\n", term.Dim.Render("user:"), path)
		}
		fmt.Printf("  %s %s\n\n", term.Dim.Render("repo:"), config.RepoFileName)

		enc := toml.NewEncoder(os.Stdout)
		enc.Indent = "  "
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
