package cmd

import (
	"github.com/spf13/cobra"

	"github.com/simon/hs/internal/history"
)

var attachCmd = &cobra.Command{
	Use:   "attach <name>",
	Short: "Attach to an existing session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := resolveBackend()
		if err != nil {
			return err
		}

		// recorded up front: attach takes the terminal until detach, so
		// the event logs the attempt
		if store := openHistory(); store != nil {
			recordEvent(store, b, args[0], history.ActionAttach)
			store.Close()
		}

		// no existence pre-check: the backend reports its own error if the
		// session vanished
		return b.AttachSession(args[0])
	},
}

func init() {
	rootCmd.AddCommand(attachCmd)
}
