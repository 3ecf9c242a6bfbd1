package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/wordmaster/internal/query"
	"github.com/abhisek/wordmaster/internal/store"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the word collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		filterName, _ := cmd.Flags().GetString("filter")
		term, _ := cmd.Flags().GetString("search")

		f := query.Filter(filterName)
		valid := false
		for _, known := range query.Filters {
			if f == known {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown filter %q (choose from: all, today, week, month, favorites)", filterName)
		}

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
		words, err := repo.List(cmd.Context(), store.SortRecentFirst)
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}

		view := query.Search(query.Apply(words, f, time.Now()), term)
		if len(view) == 0 {
			fmt.Println("No words found.")
			return nil
		}

		for _, w := range view {
			markers := ""
			if w.IsFavorite {
				markers += " ♥"
			}
			if w.IsLearned {
				markers += " ✓"
			}
			fmt.Printf("%-18s %-12s %s  %s%s\n",
				w.Word,
				w.Difficulty,
				w.CreatedDate.Local().Format("2006-01-02"),
				w.Definition,
				markers)
		}
		fmt.Printf("\n%d words\n", len(view))
		return nil
	},
}

func init() {
	wordsCmd.Flags().StringP("filter", "f", "all", "Filter: all, today, week, month, favorites")
	wordsCmd.Flags().StringP("search", "s", "", "Substring match on word or definition")
}
