package cmd

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/richardhedges/GitAiMsg/internal/config"
	"github.com/richardhedges/GitAiMsg/internal/keyring"
	ui "github.com/richardhedges/GitAiMsg/internal/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage API keys in the OS keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuthStatus()
	},
}

var authSetCmd = &cobra.Command{
	Use:   "set <provider>",
	Short: "Store an API key in the OS keyring",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthSet,
}

var authDeleteCmd = &cobra.Command{
	Use:   "delete <provider>",
	Short: "Remove an API key from the OS keyring",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthDelete,
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authDeleteCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthStatus() error {
	cfg := config.Load()
	customEnvs := map[string]string{
		"openai": cfg.OpenAI.APIKeyEnv,
		"gemini": cfg.Gemini.APIKeyEnv,
	}
	status := keyring.Status(config.Providers(), customEnvs)

	fmt.Printf("\n  %s\n\n", ui.Bold.Render("API Keys"))
	for _, p := range config.Providers() {
		if !config.Registry[p].NeedsAuth {
			continue
		}
		info := status[p]
		if info.Found {
			fmt.Printf("  %s  %-10s%s\n", ui.OK(), p, ui.Dim.Render(string(info.Source)))
		} else {
			fmt.Printf("  %s  %s\n", ui.Fail(), p)
		}
	}
	fmt.Println()
	return nil
}

func runAuthSet(cmd *cobra.Command, args []string) error {
	provider := strings.ToLower(args[0])
	if !needsAuth(provider) {
		return fmt.Errorf("unknown or keyless provider: %s", provider)
	}

	fmt.Printf("  Enter API key for %s: ", provider)
	key, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}

	apiKey := strings.TrimSpace(string(key))
	if apiKey == "" {
		return fmt.Errorf("empty key, nothing saved")
	}
	if err := keyring.Set(provider, apiKey); err != nil {
		return fmt.Errorf("failed to save key: %w", err)
	}

	fmt.Printf("  %s API key for %s saved to keyring.\n", ui.OK(), provider)
	return nil
}

func runAuthDelete(cmd *cobra.Command, args []string) error {
	provider := strings.ToLower(args[0])
	if !needsAuth(provider) {
		return fmt.Errorf("unknown or keyless provider: %s", provider)
	}
	if err := keyring.Delete(provider); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}
	fmt.Printf("  %s API key for %s removed from keyring.\n", ui.OK(), provider)
	return nil
}

func needsAuth(provider string) bool {
	entry, ok := config.Registry[provider]
	return ok && entry.NeedsAuth
}
