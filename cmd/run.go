package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/wordmaster/internal/app"
	"github.com/abhisek/wordmaster/internal/llm"
	"github.com/abhisek/wordmaster/internal/session"
	"github.com/abhisek/wordmaster/internal/store"
	"github.com/abhisek/wordmaster/internal/wordgen"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	storePath, err := resolveStorePath(cmd)
	if err != nil {
		return fmt.Errorf("resolve store path: %w", err)
	}
	st, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo := store.NewRepo(st)
	opts := app.Options{Repo: repo}

	usage := llm.OpenUsageLog(usageLogPath(storePath))
	provider, err := llm.NewProviderFromEnv(ctx, usage)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Word generation will be unavailable.")
		opts.Session = session.New(repo, nil)
	} else {
		gen := wordgen.New(provider, wordgen.DefaultConfig())
		opts.Session = session.New(repo, gen)
		opts.LLMReady = true
	}

	return app.Run(opts)
}
