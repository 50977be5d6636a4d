package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/simon/hs/internal/backend"
	"github.com/simon/hs/internal/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions without entering the menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := resolveBackend()
		if err != nil {
			return err
		}

		sessions, err := backend.Snapshot(b)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions.")
			return nil
		}

		// shrink the name column on narrow terminals
		maxName := backend.MaxNameDisplay
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < 60 {
			maxName = 12
		}

		fmt.Print(tui.Table(sessions, maxName))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
