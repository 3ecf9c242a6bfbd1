package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/wordmaster/internal/llm"
	"github.com/abhisek/wordmaster/internal/session"
	"github.com/abhisek/wordmaster/internal/store"
	"github.com/abhisek/wordmaster/internal/wordgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of words without opening the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		storePath, err := resolveStorePath(cmd)
		if err != nil {
			return fmt.Errorf("resolve store path: %w", err)
		}
		st, err := store.Open(storePath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		usage := llm.OpenUsageLog(usageLogPath(storePath))
		provider, err := llm.NewProviderFromEnv(cmd.Context(), usage)
		if err != nil {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}

		repo := store.NewRepo(st)
		gsess := session.New(repo, wordgen.New(provider, wordgen.DefaultConfig()))

		fmt.Println("Generating words...")
		words, err := gsess.Generate(cmd.Context(), count)
		if err != nil {
			return err
		}

		fmt.Printf("Added %d words:\n\n", len(words))
		for _, w := range words {
			fmt.Printf("  %-18s %s  %s\n", w.Word, w.Difficulty, w.Definition)
			if len(w.Synonyms) > 0 {
				fmt.Printf("  %-18s also: %s\n", "", strings.Join(w.Synonyms, ", "))
			}
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("count", "n", 0, "Number of words to generate (default 10)")
}
