package cmd

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/richardhedges/GitAiMsg/internal/ai"
	"github.com/richardhedges/GitAiMsg/internal/config"
	"github.com/richardhedges/GitAiMsg/internal/git"
	"github.com/richardhedges/GitAiMsg/internal/hooklog"
	"github.com/richardhedges/GitAiMsg/internal/run"
)

var rootCmd = &cobra.Command{
	Use:   "gitaimsg",
	Short: "Draft a Conventional Commit message from the staged diff",
	Long: "gitaimsg sends the staged diff to a local or hosted language model and\n" +
		"prints a validated Conventional Commit message to stdout. Built to run\n" +
		"from a prepare-commit-msg hook: it never blocks a commit — on any\n" +
		"failure it degrades to a deterministic message or stays silent.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		runHook(cmd.Context())
	},
}

// Execute runs the CLI. The root command always exits zero: a broken
// message generator must never fail the hook that invoked it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Subcommand failures may exit non-zero; the hook path never
		// reaches here with an error.
		os.Exit(1)
	}
}

func runHook(ctx context.Context) {
	log := hooklog.Open(git.Dir())
	defer log.Sync()

	// Fail-safe: whatever breaks, log it and exit quietly with no output.
	defer func() {
		if r := recover(); r != nil {
			log.Logf("fatal: %v", r)
			log.Logf("%s", debug.Stack())
		}
	}()

	cfg := config.Load()
	p := &run.Pipeline{
		Config:   cfg,
		Git:      git.Default,
		Provider: ai.NewProvider(cfg),
		Out:      os.Stdout,
		Log:      log,
	}
	if ctx == nil {
		ctx = context.Background()
	}
	p.Run(ctx)
}
