package backend

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// tmuxBackend drives tmux through its structured -F output formats, so no
// freeform text parsing is needed.
type tmuxBackend struct {
	path string
}

func (t *tmuxBackend) Kind() Kind   { return Tmux }
func (t *tmuxBackend) Path() string { return t.path }

func (t *tmuxBackend) Version() string {
	out, err := exec.Command(t.path, "-V").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func (t *tmuxBackend) ListSessions() ([]string, error) {
	out, err := exec.Command(t.path, "list-sessions", "-F", "#{session_name}").Output()
	if err != nil {
		// "no server running" or "no sessions" — not an error for us
		return nil, nil
	}
	return splitLines(string(out)), nil
}

func (t *tmuxBackend) CurrentSession() (string, bool) {
	if os.Getenv("TMUX") == "" {
		return "", false
	}
	out, err := exec.Command(t.path, "display-message", "-p", "#{session_name}").Output()
	if err != nil {
		return "", false
	}
	name := strings.TrimSpace(string(out))
	return name, name != ""
}

func (t *tmuxBackend) SessionActivity(name string) (time.Time, bool) {
	out, err := exec.Command(t.path, "display-message", "-p", "-t", name, "#{session_activity}").Output()
	if err != nil {
		return time.Time{}, false
	}
	epoch, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil || epoch <= 0 {
		return time.Time{}, false
	}
	return time.Unix(epoch, 0), true
}

func (t *tmuxBackend) SessionConnections(name string) int {
	out, err := exec.Command(t.path, "display-message", "-p", "-t", name, "#{session_attached}").Output()
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (t *tmuxBackend) ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, tmuxForbidden) {
		return &InvalidNameError{Name: name, Suggestion: SanitizeName(name)}
	}
	return nil
}

// CreateSession hands the terminal to the new session; it returns when the
// session exits or the user detaches.
func (t *tmuxBackend) CreateSession(name string) error {
	return t.runInteractive("new-session", "-s", name)
}

func (t *tmuxBackend) AttachSession(name string) error {
	return t.runInteractive("attach-session", "-t", name)
}

func (t *tmuxBackend) KillSession(name string) error {
	cmd := exec.Command(t.path, "kill-session", "-t", name)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (t *tmuxBackend) runInteractive(args ...string) error {
	cmd := exec.Command(t.path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = filterTmuxEnv(os.Environ())
	return cmd.Run()
}

// filterTmuxEnv removes the TMUX variable so attach and create work from
// within an existing session.
func filterTmuxEnv(env []string) []string {
	filtered := make([]string, 0, len(env))
	for _, e := range env {
		if !strings.HasPrefix(e, "TMUX=") {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
