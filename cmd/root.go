package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/simon/hs/internal/debug"
	"github.com/simon/hs/internal/history"
	"github.com/simon/hs/internal/tui"
)

func SetVersionInfo(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

var rootCmd = &cobra.Command{
	Use:   "hs",
	Short: "Interactive session picker for tmux and GNU screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := resolveBackend()
		if err != nil {
			return err
		}

		store := openHistory()
		if store != nil {
			defer store.Close()
		}

		m := tui.NewModel(b, store)
		finalModel, err := tea.NewProgram(m).Run()
		if err != nil {
			return fmt.Errorf("menu error: %w", err)
		}

		final := finalModel.(tui.Model)
		if final.Notice != "" {
			fmt.Fprintln(os.Stderr, final.Notice)
		}

		// Attach and create take over the terminal; the menu does not
		// resume. Their events are recorded up front and log the attempt.
		switch {
		case final.AttachTarget != "":
			recordEvent(store, b, final.AttachTarget, history.ActionAttach)
			return b.AttachSession(final.AttachTarget)
		case final.CreateTarget != "":
			recordEvent(store, b, final.CreateTarget, history.ActionCreate)
			return b.CreateSession(final.CreateTarget)
		}
		return nil
	},
}

func Execute() {
	debug.Init()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
