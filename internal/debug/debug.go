// Package debug provides env-gated diagnostics on stderr.
// Enable by setting HS_DEBUG=1.
package debug

import (
	"io"
	"log"
	"os"
)

var (
	// Enabled reports whether diagnostics are being emitted.
	Enabled bool

	logger = log.New(io.Discard, "", 0)
)

// Init switches diagnostics on when HS_DEBUG=1 is set.
// Call once from main before normal operation.
func Init() {
	if os.Getenv("HS_DEBUG") != "1" {
		return
	}
	Enabled = true
	logger = log.New(os.Stderr, "hs: ", 0)
}

// Logf emits a diagnostic line when debug mode is enabled.
func Logf(format string, v ...any) {
	if Enabled {
		logger.Printf(format, v...)
	}
}
