package backend

import (
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// EnvBackend forces backend selection. Its value must name a resolvable
// multiplexer program or startup fails.
const EnvBackend = "HS_BACKEND"

// Kind identifies a multiplexer implementation.
type Kind string

const (
	Tmux   Kind = "tmux"
	Screen Kind = "screen"
)

// ErrNoBackend means neither tmux nor screen is on PATH.
var ErrNoBackend = errors.New("no terminal multiplexer found (tried tmux, screen)")

// NotFoundError reports a forced backend whose program could not be resolved.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("backend %q not found on PATH", e.Name)
}

// Backend abstracts multiplexer operations so the menu and subcommands never
// branch on which program is installed. Metadata lookups on a session that
// vanished after listing report absent/zero rather than an error.
type Backend interface {
	Kind() Kind
	Path() string    // resolved program path, for diagnostics
	Version() string // backend version line, for diagnostics

	ListSessions() ([]string, error)
	CurrentSession() (string, bool)
	SessionActivity(name string) (time.Time, bool)
	SessionConnections(name string) int
	ValidateName(name string) error
	CreateSession(name string) error
	AttachSession(name string) error
	KillSession(name string) error
}

// Detect resolves which backend to use. A non-empty forced name must resolve
// or detection fails; otherwise tmux is preferred over screen. screenDir
// overrides screen's socket directory discovery (empty means auto).
//
// Called once per process; the result is used for the process lifetime.
func Detect(forced, screenDir string) (Backend, error) {
	if forced != "" {
		path, err := exec.LookPath(forced)
		if err != nil {
			return nil, &NotFoundError{Name: forced}
		}
		return forKind(Kind(forced), path, screenDir)
	}

	for _, kind := range []Kind{Tmux, Screen} {
		if path, err := exec.LookPath(string(kind)); err == nil {
			b, err := forKind(kind, path, screenDir)
			if err != nil {
				continue
			}
			return b, nil
		}
	}
	return nil, ErrNoBackend
}

func forKind(kind Kind, path, screenDir string) (Backend, error) {
	switch kind {
	case Tmux:
		return &tmuxBackend{path: path}, nil
	case Screen:
		return &screenBackend{path: path, socketDir: screenDir}, nil
	default:
		return nil, fmt.Errorf("unsupported backend %q (supported: tmux, screen)", kind)
	}
}

// Session is one row of the session table.
type Session struct {
	Name         string
	LastActivity time.Time
	HasActivity  bool
	Connections  int
	Current      bool
}

// Snapshot enumerates sessions and resolves per-session metadata in one
// pass. Sessions that disappear between listing and the metadata queries
// show up with absent activity and zero connections.
func Snapshot(b Backend) ([]Session, error) {
	names, err := b.ListSessions()
	if err != nil {
		return nil, err
	}

	current, _ := b.CurrentSession()

	sessions := make([]Session, 0, len(names))
	for _, name := range names {
		at, ok := b.SessionActivity(name)
		sessions = append(sessions, Session{
			Name:         name,
			LastActivity: at,
			HasActivity:  ok,
			Connections:  b.SessionConnections(name),
			Current:      current != "" && name == current,
		})
	}
	return sessions, nil
}
