package backend

import (
	"errors"
	"fmt"
	"strings"
)

// MaxNameDisplay is the widest session name the table renders without
// truncation. Longer names are legal but creation asks for confirmation.
const MaxNameDisplay = 25

// ErrEmptyName rejects empty session names on every backend.
var ErrEmptyName = errors.New("session name is empty")

// tmux reserves '.' and ':' for target syntax; spaces break quoting.
const tmuxForbidden = ".: "

// InvalidNameError reports characters the backend cannot accept, with a
// sanitized suggestion that itself passes validation.
type InvalidNameError struct {
	Name       string
	Suggestion string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid session name %q: may not contain '.', ':' or spaces (try %q)", e.Name, e.Suggestion)
}

// SanitizeName replaces every character tmux rejects with a hyphen.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(tmuxForbidden, r) {
			return '-'
		}
		return r
	}, name)
}
