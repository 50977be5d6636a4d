package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/simon/hs/internal/backend"
)

var (
	// Adaptive colors for light/dark terminal backgrounds
	accentColor = lipgloss.AdaptiveColor{Light: "#D6249F", Dark: "#FF79C6"}
	greenColor  = lipgloss.AdaptiveColor{Light: "#116620", Dark: "#50FA7B"}
	redColor    = lipgloss.AdaptiveColor{Light: "#B31D28", Dark: "#FF5555"}
	dimColor    = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	currentRowStyle = lipgloss.NewStyle().
			Foreground(greenColor).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(redColor).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			PaddingLeft(1)
)

// pad right-pads s to width with spaces (based on visual width, not byte count).
func pad(s string, width int) string {
	visual := lipgloss.Width(s)
	if visual >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visual)
}

func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-1]) + "…"
}

// formatActivity renders a session's last activity as a coarse relative time.
func formatActivity(s backend.Session) string {
	if !s.HasActivity {
		return "-"
	}
	d := time.Since(s.LastActivity)
	if d < 0 {
		d = 0
	}
	return formatDurationCoarse(d) + " ago"
}

// formatDurationCoarse formats a duration using only the largest unit.
func formatDurationCoarse(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours())/24)
}

// Table renders the numbered session table. The current session's row is
// marked with '*'. maxName bounds the name column; shared with `hs list`.
func Table(sessions []backend.Session, maxName int) string {
	var b strings.Builder

	header := fmt.Sprintf("      %s  %s  %s",
		pad("NAME", maxName), pad("LAST ACTIVITY", 13), "ATTACHED")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for i, s := range sessions {
		marker := " "
		if s.Current {
			marker = "*"
		}
		row := fmt.Sprintf("  %2d %s %s  %s  %d",
			i+1, marker,
			pad(truncateName(s.Name, maxName), maxName),
			pad(formatActivity(s), 13),
			s.Connections)
		if s.Current {
			row = currentRowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) promptLabel() string {
	switch m.mode {
	case modeNewName:
		if m.emptyStart {
			return "No sessions. New session name (empty cancels): "
		}
		return "New session name (empty cancels): "
	case modeLongNameConfirm:
		return fmt.Sprintf("Name is longer than %d characters and will be truncated. Create anyway? [y/N] ",
			backend.MaxNameDisplay)
	case modeKillIndex:
		return fmt.Sprintf("Kill which session [1-%d]? ", len(m.sessions))
	case modeKillConfirm:
		return fmt.Sprintf("Kill session %q? [y/N] ", m.killTarget)
	default:
		if m.hint {
			return "Session number, (n)ew, (k)ill, (q)uit: "
		}
		return "Session number, (n)ew, (k)ill: "
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("hs"))
	b.WriteString("\n\n")

	if !m.loaded {
		return b.String()
	}

	if m.err != nil {
		b.WriteString(fmt.Sprintf("  Error: %v\n\n", m.err))
	} else if m.mode != modeNewName && m.mode != modeLongNameConfirm {
		b.WriteString(Table(m.sessions, backend.MaxNameDisplay))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(promptStyle.Render(m.promptLabel()))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc quits"))
	b.WriteString("\n")

	return b.String()
}
