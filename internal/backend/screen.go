package backend

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// screenBackend drives GNU screen. Its listing and process output have no
// machine-readable format, so each shape is parsed by a dedicated function.
type screenBackend struct {
	path      string
	socketDir string // explicit socket dir from config, empty means discover
}

func (s *screenBackend) Kind() Kind   { return Screen }
func (s *screenBackend) Path() string { return s.path }

func (s *screenBackend) Version() string {
	// screen prints its version on stdout and exits non-zero on some builds
	out, _ := exec.Command(s.path, "-v").CombinedOutput()
	return strings.TrimSpace(string(out))
}

func (s *screenBackend) ListSessions() ([]string, error) {
	// screen -ls historically exits non-zero even on success; parse
	// whatever it printed and treat "no sessions" as an empty list.
	out, _ := exec.Command(s.path, "-ls").CombinedOutput()
	return parseScreenList(string(out)), nil
}

// parseScreenList extracts session names from `screen -ls` output. Session
// lines are indented and start with a numeric pid prefix:
//
//	There are screens on:
//	        12345.myproject (Attached)
//	        67890.scratch   (Detached)
//	2 Sockets in /run/screen/S-simon.
//
// Headers, the socket-dir footer, and "No Sockets found" are skipped.
func parseScreenList(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "\t") && !strings.HasPrefix(line, " ") {
			continue
		}
		name := screenEntryName(strings.TrimLeft(line, " \t"))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// screenEntryName strips the numeric "pid." prefix from a socket entry and
// trims the trailing state annotation. Returns "" for non-entry lines.
func screenEntryName(entry string) string {
	dot := strings.IndexByte(entry, '.')
	if dot <= 0 {
		return ""
	}
	if _, err := strconv.Atoi(entry[:dot]); err != nil {
		return ""
	}
	name := entry[dot+1:]
	// the "(Attached)"/"(Detached)" column is tab-separated from the name
	if tab := strings.IndexByte(name, '\t'); tab >= 0 {
		name = name[:tab]
	}
	return strings.TrimRight(name, " \t\r")
}

func (s *screenBackend) CurrentSession() (string, bool) {
	sty := os.Getenv("STY")
	if sty == "" {
		return "", false
	}
	if name := screenEntryName(sty); name != "" {
		return name, true
	}
	return sty, true
}

// SessionActivity reads the mtime of the session's socket file. screen
// touches the socket on activity, which is the closest thing it offers to
// a last-activity timestamp.
func (s *screenBackend) SessionActivity(name string) (time.Time, bool) {
	for _, dir := range s.socketDirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if screenEntryName(entry.Name()) != name {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			return info.ModTime(), true
		}
	}
	return time.Time{}, false
}

func (s *screenBackend) socketDirs() []string {
	if s.socketDir != "" {
		return []string{s.socketDir}
	}
	var dirs []string
	if d := os.Getenv("SCREENDIR"); d != "" {
		dirs = append(dirs, d)
	}
	if user := os.Getenv("USER"); user != "" {
		dirs = append(dirs,
			filepath.Join("/run/screen", "S-"+user),
			filepath.Join("/var/run/screen", "S-"+user),
			filepath.Join(os.TempDir(), "screens", "S-"+user),
		)
	}
	return dirs
}

// SessionConnections counts attached client processes, since screen exposes
// no attached-count query. Unreadable process tables count as zero.
func (s *screenBackend) SessionConnections(name string) int {
	out, err := exec.Command("ps", "ax", "-o", "command=").Output()
	if err != nil {
		return 0
	}
	return countScreenClients(string(out), name)
}

// countScreenClients counts lowercase `screen` client processes whose
// arguments reference the named session. The server runs as uppercase
// SCREEN and the ps invocation itself never matches, so both are excluded.
func countScreenClients(psOut, name string) int {
	count := 0
	for _, line := range strings.Split(psOut, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if filepath.Base(fields[0]) != "screen" {
			continue
		}
		for _, arg := range fields[1:] {
			if arg == name || strings.HasSuffix(arg, "."+name) {
				count++
				break
			}
		}
	}
	return count
}

// ValidateName accepts any non-empty name; screen has no character
// restrictions of its own.
func (s *screenBackend) ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return nil
}

func (s *screenBackend) CreateSession(name string) error {
	return s.runInteractive("-S", name)
}

func (s *screenBackend) AttachSession(name string) error {
	return s.runInteractive("-r", name)
}

func (s *screenBackend) KillSession(name string) error {
	cmd := exec.Command(s.path, "-S", name, "-X", "quit")
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (s *screenBackend) runInteractive(args ...string) error {
	cmd := exec.Command(s.path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
