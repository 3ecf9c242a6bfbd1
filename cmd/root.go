package cmd

import (
	"path/filepath"

	"github.com/abhisek/wordmaster/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordmaster",
	Short: "AI vocabulary builder for the terminal",
	Long:  "WordMaster: generate vocabulary words with an LLM, browse them as cards, and track favorites and learned words.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("store", "", "Path to SQLite database file (overrides WORDMASTER_DB env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveStorePath returns the database path using --store flag (highest
// priority), then WORDMASTER_DB env var, then the default XDG path.
func resolveStorePath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("store"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultStorePath()
}

// usageLogPath places the LLM usage log next to the database file.
func usageLogPath(storePath string) string {
	return filepath.Join(filepath.Dir(storePath), "llm.jsonl")
}
