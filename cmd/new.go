package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/simon/hs/internal/backend"
	"github.com/simon/hs/internal/history"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a session and hand it the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		b, err := resolveBackend()
		if err != nil {
			return err
		}

		if err := b.ValidateName(name); err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && utf8.RuneCountInString(name) > backend.MaxNameDisplay {
			prompt := fmt.Sprintf("Name is longer than %d characters and will be truncated in listings. Create anyway? [y/N] ",
				backend.MaxNameDisplay)
			if !confirm(prompt) {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		// recorded up front: create hands the terminal to the session and
		// only returns once it ends, so the event logs the attempt
		if store := openHistory(); store != nil {
			recordEvent(store, b, name, history.ActionCreate)
			store.Close()
		}
		return b.CreateSession(name)
	},
}

func init() {
	newCmd.Flags().BoolP("force", "f", false, "Skip long-name confirmation")
	rootCmd.AddCommand(newCmd)
}
