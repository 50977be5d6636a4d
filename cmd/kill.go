package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simon/hs/internal/history"
)

var killCmd = &cobra.Command{
	Use:   "kill <name>",
	Short: "Kill a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		b, err := resolveBackend()
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirm(fmt.Sprintf("Kill session %q? [y/N] ", name)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := b.KillSession(name); err != nil {
			return fmt.Errorf("failed to kill session: %w", err)
		}

		if store := openHistory(); store != nil {
			recordEvent(store, b, name, history.ActionKill)
			store.Close()
		}

		fmt.Printf("Killed session %q\n", name)
		return nil
	},
}

func init() {
	killCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	rootCmd.AddCommand(killCmd)
}
