package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/richardhedges/GitAiMsg/internal/config"
	"github.com/richardhedges/GitAiMsg/internal/keyring"
	"github.com/richardhedges/GitAiMsg/internal/term"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and provider status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	})
}

func runDoctor() error {
	cfg := config.Load()
	rp := cfg.ResolveProvider(cfg.Provider)

	fmt.Println()
	fmt.Printf("  %s  %s\n", term.Bold.Render("Provider"), cfg.Provider)
	fmt.Printf("  %s     %s\n", term.Bold.Render("Model"), rp.Model)
	fmt.Printf("  %s  %s\n", term.Bold.Render("Base URL"), rp.BaseURL)
	if path, err := config.Path(); err == nil {
		fmt.Printf("  %s    %s\n", term.Bold.Render("Config"), term.Dim.Render(path))
	}

	// Key status per provider
	customEnvs := map[string]string{
		"openai": cfg.OpenAI.APIKeyEnv,
		"gemini": cfg.Gemini.APIKeyEnv,
	}
	status := keyring.Status(config.Providers(), customEnvs)

	fmt.Printf("\n  %s\n\n", term.Bold.Render("Keys"))
	for _, p := range config.Providers() {
		entry := config.Registry[p]
		info := status[p]
		switch {
		case !entry.NeedsAuth:
			fmt.Printf("  %s  %-10s%s\n", term.Dim.Render("·"), p, term.Dim.Render("no auth needed"))
		case info.Found:
			fmt.Printf("  %s  %-10s%s\n", term.OK(), p, term.Dim.Render(string(info.Source)))
		default:
			hint := fmt.Sprintf("gitaimsg auth set %s", p)
			if entry.DefaultEnv != "" {
				hint = fmt.Sprintf("%s or %s", entry.DefaultEnv, hint)
			}
			fmt.Printf("  %s  %-10s%s\n", term.Fail(), p, term.Dim.Render("not found  ← "+hint))
		}
	}

	fmt.Println()
	if entry := config.Registry[cfg.Provider]; entry.NeedsAuth && !status[cfg.Provider].Found {
		fmt.Printf("  %s\n\n", term.Red.Render(fmt.Sprintf("Active provider %q has no API key — the hook will fall back to numstat messages.", cfg.Provider)))
	} else {
		fmt.Printf("  %s Everything looks good.\n\n", term.OK())
	}
	return nil
}
