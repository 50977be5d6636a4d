package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simon/hs/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent session events",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open()
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		events, err := store.Recent(limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No history.")
			return nil
		}

		for _, ev := range events {
			fmt.Printf("%s  %-6s  %-6s  %s\n",
				ev.At.Format("2006-01-02 15:04"), ev.Action, ev.Backend, ev.Session)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum events to show")
	rootCmd.AddCommand(historyCmd)
}
