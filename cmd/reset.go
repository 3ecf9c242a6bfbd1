package cmd

import (
	"fmt"

	"github.com/abhisek/wordmaster/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved words",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			fmt.Println("This deletes every saved word. Re-run with --yes to confirm.")
			return nil
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
		if err := repo.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear collection: %w", err)
		}
		fmt.Println("Collection cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
