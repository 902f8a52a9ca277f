package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/richardhedges/GitAiMsg/internal/ai"
	"github.com/richardhedges/GitAiMsg/internal/term"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Edit the system prompt override",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := ai.PromptPath()
		if err != nil {
			return err
		}

		// Seed the file with the current prompt so the editor has content.
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := ai.WritePrompt(ai.LoadPrompt()); err != nil {
				return err
			}
		}

		c := exec.Command(getEditor(), path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("editor exited with error: %w", err)
		}

		fmt.Printf("  %s Prompt saved.\n", term.OK())
		return nil
	},
}

var promptShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective system prompt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println(ai.LoadPrompt())
		fmt.Println()
	},
}

var promptResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the prompt to the default",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ai.WritePrompt(ai.DefaultSystemPrompt); err != nil {
			return fmt.Errorf("failed to reset prompt: %w", err)
		}
		fmt.Printf("  %s Prompt reset to default.\n", term.OK())
		return nil
	},
}

func getEditor() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}

func init() {
	promptCmd.AddCommand(promptShowCmd)
	promptCmd.AddCommand(promptResetCmd)
	rootCmd.AddCommand(promptCmd)
}
