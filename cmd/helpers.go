package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/simon/hs/internal/backend"
	"github.com/simon/hs/internal/config"
	"github.com/simon/hs/internal/debug"
	"github.com/simon/hs/internal/history"
)

// resolveBackend detects the multiplexer once for this process.
// HS_BACKEND wins over the config file; both win over probing.
func resolveBackend() (backend.Backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	forced := os.Getenv(backend.EnvBackend)
	if forced == "" {
		forced = cfg.Backend
	}

	b, err := backend.Detect(forced, cfg.ScreenDir)
	if err != nil {
		return nil, err
	}

	debug.Logf("backend: %s", b.Kind())
	debug.Logf("path: %s", b.Path())
	debug.Logf("version: %s", b.Version())
	debug.Logf("TMUX=%q STY=%q", os.Getenv("TMUX"), os.Getenv("STY"))
	return b, nil
}

// openHistory opens the event log. Returns nil when unavailable; history is
// informational and must never block session management.
func openHistory() *history.Store {
	store, err := history.Open()
	if err != nil {
		debug.Logf("history unavailable: %v", err)
		return nil
	}
	return store
}

func recordEvent(store *history.Store, b backend.Backend, name, action string) {
	if store == nil {
		return
	}
	if err := store.Record(name, string(b.Kind()), action); err != nil {
		debug.Logf("history write failed: %v", err)
	}
}

// confirm prompts on stdout and accepts answers starting with y or Y.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}
